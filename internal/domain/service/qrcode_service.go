package service

// QRCodeService renders QR codes for sharing the public site.
type QRCodeService interface {
	// GenerateLinkQR encodes url as a PNG QR code.
	GenerateLinkQR(url string) ([]byte, error)
}
