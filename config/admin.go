package config

import "strings"

// Admin 管理员白名单（登录时在服务端解析成 JWT 声明）
type Admin struct {
	Emails []string `json:"emails" yaml:"emails"`
}

// IsAdminEmail 邮箱是否在白名单内（忽略大小写）
func (a *Admin) IsAdminEmail(email string) bool {
	if a == nil {
		return false
	}
	for _, e := range a.Emails {
		if strings.EqualFold(e, email) {
			return true
		}
	}
	return false
}
