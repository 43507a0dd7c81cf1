//go:build !pdfcpu
// +build !pdfcpu

package convert

// contentStreamFallback is a no-op in default builds. Builds with the
// "pdfcpu" tag replace it with a content-stream extraction pass; see
// pdfcpu.go.
func contentStreamFallback(data []byte) string {
	return ""
}
