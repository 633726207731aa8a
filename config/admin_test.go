package config

import "testing"

func TestIsAdminEmail(t *testing.T) {
	a := &Admin{Emails: []string{"admin@collabenote.com", "Ops@Collabenote.com"}}

	cases := []struct {
		email string
		want  bool
	}{
		{"admin@collabenote.com", true},
		{"ADMIN@COLLABENOTE.COM", true},
		{"ops@collabenote.com", true},
		{"student@collabenote.com", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := a.IsAdminEmail(tc.email); got != tc.want {
			t.Errorf("IsAdminEmail(%q) = %v, want %v", tc.email, got, tc.want)
		}
	}
}

func TestIsAdminEmailNilConfig(t *testing.T) {
	var a *Admin
	if a.IsAdminEmail("admin@collabenote.com") {
		t.Fatal("nil admin config must deny everyone")
	}
}
