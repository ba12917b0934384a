package models

import "testing"

func TestRoleValid(t *testing.T) {
	tests := []struct {
		role  Role
		valid bool
	}{
		{RoleChild, true},
		{RoleGuardian, true},
		{Role("adult"), false},
		{Role(""), false},
	}

	for _, tt := range tests {
		if got := tt.role.Valid(); got != tt.valid {
			t.Errorf("Role(%q).Valid() = %v, want %v", tt.role, got, tt.valid)
		}
	}
}

func TestDisplayName(t *testing.T) {
	user := UserIdentity{
		ChildName:    "Maya",
		GuardianName: "Alex",
	}

	user.Role = RoleChild
	if got := user.DisplayName(); got != "Maya" {
		t.Errorf("child display name = %q, want Maya", got)
	}

	user.Role = RoleGuardian
	if got := user.DisplayName(); got != "Alex" {
		t.Errorf("guardian display name = %q, want Alex", got)
	}
}

func TestSubjectValid(t *testing.T) {
	for _, s := range Subjects {
		if !s.Valid() {
			t.Errorf("catalog subject %q should be valid", s)
		}
	}
	if Subject("recess").Valid() {
		t.Error("unknown subject should not be valid")
	}
}

func TestAvatarProgressIsUnlocked(t *testing.T) {
	progress := NewAvatarProgress()

	if !progress.IsUnlocked(DefaultAvatarID) {
		t.Error("default avatar should start unlocked")
	}
	if progress.IsUnlocked("wizard") {
		t.Error("wizard should not start unlocked")
	}
	if progress.CurrentAvatar != DefaultAvatarID {
		t.Errorf("current avatar = %q, want %q", progress.CurrentAvatar, DefaultAvatarID)
	}
	if progress.Level != 1 {
		t.Errorf("starting level = %d, want 1", progress.Level)
	}
}
