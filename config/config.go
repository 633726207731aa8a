package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config 配置信息
type Config struct {
	App       *App             `json:"app" yaml:"app"`
	Server    *Server          `json:"server" yaml:"server"`
	Firestore *FirestoreConfig `json:"firestore" yaml:"firestore"`
	Redis     *Redis           `json:"redis" yaml:"redis"`
	Jwt       *Jwt             `json:"jwt" yaml:"jwt"`
	Oss       *OssConfig       `json:"oss" yaml:"oss"`
	Admin     *Admin           `json:"admin" yaml:"admin"`
}

type Server struct {
	Http int `json:"http" yaml:"http"`
}

func New(filename string) *Config {
	content, err := os.ReadFile(filename)
	if err != nil {
		panic(err)
	}

	var conf Config
	if err := yaml.Unmarshal(content, &conf); err != nil {
		panic(fmt.Sprintf("解析 %s 读取错误: %v", filename, err))
	}

	return &conf
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug
}

func ProvideOssConfig(c *Config) *OssConfig {
	return c.Oss
}
