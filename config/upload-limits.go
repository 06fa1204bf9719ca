package config

// Upload size limits per attachment kind
type UploadLimitConfig struct {
	PosterMaxBytes     int64 // Event poster images
	ScreenshotMaxBytes int64 // Payment transaction screenshots
	PdfMaxBytes        int64 // QR code and experience PDFs
}

var DefaultUploadLimits = UploadLimitConfig{
	PosterMaxBytes:     5 * 1024 * 1024,
	ScreenshotMaxBytes: 5 * 1024 * 1024,
	PdfMaxBytes:        1 * 1024 * 1024,
}
