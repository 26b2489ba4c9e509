package entity

import "slices"

// AssetKind identifies a profile asset slot.
type AssetKind string

const (
	AssetProfileImage AssetKind = "profile-image"
	AssetResume       AssetKind = "resume"
	AssetCV           AssetKind = "cv"
)

// AssetClass groups asset kinds that share type and size rules.
type AssetClass string

const (
	AssetClassImage    AssetClass = "image"
	AssetClassDocument AssetClass = "document"
)

var (
	imageMIMETypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

	documentMIMETypes = []string{
		"application/pdf",
		"application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	}
)

// ParseAssetKind accepts the route name of an asset slot as well as the
// original form field names.
func ParseAssetKind(s string) (AssetKind, bool) {
	switch s {
	case string(AssetProfileImage), "profileImage":
		return AssetProfileImage, true
	case string(AssetResume):
		return AssetResume, true
	case string(AssetCV):
		return AssetCV, true
	default:
		return "", false
	}
}

// FormField is the multipart field name that carries a file of this kind.
func (k AssetKind) FormField() string {
	if k == AssetProfileImage {
		return "profileImage"
	}

	return string(k)
}

// Class returns the validation class of the asset kind.
func (k AssetKind) Class() AssetClass {
	if k == AssetProfileImage {
		return AssetClassImage
	}

	return AssetClassDocument
}

// StoragePrefix is the directory the asset kind is stored under.
func (k AssetKind) StoragePrefix() string {
	if k.Class() == AssetClassImage {
		return "profile"
	}

	return "docs"
}

// AllowsMIME reports whether the class accepts the MIME type.
func (c AssetClass) AllowsMIME(mimeType string) bool {
	if c == AssetClassImage {
		return slices.Contains(imageMIMETypes, mimeType)
	}

	return slices.Contains(documentMIMETypes, mimeType)
}

// AllowedMIMETypes lists the MIME types accepted by the class.
func (c AssetClass) AllowedMIMETypes() []string {
	if c == AssetClassImage {
		return slices.Clone(imageMIMETypes)
	}

	return slices.Clone(documentMIMETypes)
}
