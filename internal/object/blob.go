package object

// Blob is the opaque byte content of a single file.
type Blob struct {
	Content []byte
}

// NewBlob wraps raw file content as a Blob.
func NewBlob(content []byte) *Blob {
	return &Blob{Content: content}
}

func (b *Blob) Kind() Kind { return KindBlob }

// Serialize implements Object. A blob's canonical form is its framed content
// with no further structure, per spec §4.2.
func (b *Blob) Serialize() []byte {
	return frame(KindBlob, b.Content)
}
