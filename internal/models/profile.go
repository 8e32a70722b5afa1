package models

// Profile is an immutable snapshot of a resolved user's identity and activity counts.
type Profile struct {
	DisplayName     *string `json:"display_name"` // nil when the account has no public name
	AvatarURI       string  `json:"avatar_uri"`
	PublicRepoCount int     `json:"public_repo_count"`
	FollowerCount   int     `json:"follower_count"`
	FollowingCount  int     `json:"following_count"`
}

// Name returns the display name or "" when absent.
func (p *Profile) Name() string {
	if p == nil || p.DisplayName == nil {
		return ""
	}
	return *p.DisplayName
}

// Clone returns a deep copy so callers never share the name pointer.
func (p *Profile) Clone() *Profile {
	if p == nil {
		return nil
	}
	c := *p
	if p.DisplayName != nil {
		name := *p.DisplayName
		c.DisplayName = &name
	}
	return &c
}
