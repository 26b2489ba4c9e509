package entity

import (
	"time"

	"github.com/google/uuid"
)

// Socials holds the profile's social links. It is always replaced as a whole.
type Socials struct {
	GitHub    string `json:"github"`
	LinkedIn  string `json:"linkedin"`
	Twitter   string `json:"twitter"`
	Portfolio string `json:"portfolio"`
}

// Profile is the singleton owner profile shown on the public site.
type Profile struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Tagline      string    `json:"tagline"`
	About        string    `json:"about"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Location     string    `json:"location"`
	Socials      Socials   `json:"socials"`
	ProfileImage string    `json:"profileImage"`
	ResumeURL    string    `json:"resumeUrl"`
	CVURL        string    `json:"cvUrl"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ProfilePatch carries the fields of a profile update. Nil fields are left untouched.
type ProfilePatch struct {
	Name         *string  `json:"name"`
	Tagline      *string  `json:"tagline"`
	About        *string  `json:"about"`
	Email        *string  `json:"email"`
	Phone        *string  `json:"phone"`
	Location     *string  `json:"location"`
	Socials      *Socials `json:"socials"`
	ProfileImage *string  `json:"profileImage"`
	ResumeURL    *string  `json:"resumeUrl"`
	CVURL        *string  `json:"cvUrl"`
}

// IsEmpty reports whether the patch changes nothing.
func (p *ProfilePatch) IsEmpty() bool {
	return p == nil || (p.Name == nil && p.Tagline == nil && p.About == nil && p.Email == nil &&
		p.Phone == nil && p.Location == nil && p.Socials == nil && p.ProfileImage == nil &&
		p.ResumeURL == nil && p.CVURL == nil)
}

// Apply merges the patch into the profile.
func (p *ProfilePatch) Apply(profile *Profile) {
	setIfPresent(&profile.Name, p.Name)
	setIfPresent(&profile.Tagline, p.Tagline)
	setIfPresent(&profile.About, p.About)
	setIfPresent(&profile.Email, p.Email)
	setIfPresent(&profile.Phone, p.Phone)
	setIfPresent(&profile.Location, p.Location)
	setIfPresent(&profile.ProfileImage, p.ProfileImage)
	setIfPresent(&profile.ResumeURL, p.ResumeURL)
	setIfPresent(&profile.CVURL, p.CVURL)
	if p.Socials != nil {
		profile.Socials = *p.Socials
	}
}

// AssetURL returns the URL stored in the given asset slot.
func (p *Profile) AssetURL(kind AssetKind) string {
	switch kind {
	case AssetProfileImage:
		return p.ProfileImage
	case AssetResume:
		return p.ResumeURL
	case AssetCV:
		return p.CVURL
	default:
		return ""
	}
}

// SetAssetURL stores url in the given asset slot.
func (p *Profile) SetAssetURL(kind AssetKind, url string) {
	switch kind {
	case AssetProfileImage:
		p.ProfileImage = url
	case AssetResume:
		p.ResumeURL = url
	case AssetCV:
		p.CVURL = url
	}
}

func setIfPresent[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
