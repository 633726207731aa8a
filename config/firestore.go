package config

// FirestoreConfig 文档库配置
type FirestoreConfig struct {
	ProjectID       string `json:"project_id" yaml:"project_id"`
	CredentialsFile string `json:"credentials_file" yaml:"credentials_file"`
}
