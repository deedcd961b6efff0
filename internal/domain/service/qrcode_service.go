package service

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GenerateOrderTrackingQR returns a PNG encoding the tracking URL of orderID
	GenerateOrderTrackingQR(orderID string) ([]byte, error)

	// TrackingURL returns the URL the order's QR code points to
	TrackingURL(orderID string) string
}
