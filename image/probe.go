package image

// Image formats
const (
	FORMAT_UNKNOWN = ""
	FORMAT_JPEG    = "jpeg"
	FORMAT_PNG     = "png"
	FORMAT_GIF     = "gif"
)

// probe window cap, enough for the header segments of interest
const maxProbeBytes = 1 << 20

var (
	pngSignature = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}
)

// Probe sniffs the image format from header bytes as they arrive, and
// detects progressive renditions: progressive JPEG (SOF2 frame) and
// interlaced PNG (Adam7). Feed it incrementally with Write.
type Probe struct {
	header  []byte
	decided bool
	result  bool
}

// Init this class
func (me *Probe) Init() *Probe {
	me.header = make([]byte, 0, 512)
	return me
}

// Write accumulates header bytes until a decision is reached
func (me *Probe) Write(p []byte) (int, error) {
	if !me.decided && len(me.header) < maxProbeBytes {
		me.header = append(me.header, p...)
	}
	return len(p), nil
}

// Format returns the sniffed image format
func (me *Probe) Format() string {
	b := me.header

	switch {
	case len(b) >= 2 && b[0] == 0xFF && b[1] == 0xD8:
		return FORMAT_JPEG
	case len(b) >= 8 && string(b[:8]) == string(pngSignature):
		return FORMAT_PNG
	case len(b) >= 4 && string(b[:4]) == "GIF8":
		return FORMAT_GIF
	}

	return FORMAT_UNKNOWN
}

// Progressive reports whether the source is a progressive rendition. It
// keeps returning false until enough bytes arrived to decide.
func (me *Probe) Progressive() bool {
	if me.decided {
		return me.result
	}

	switch me.Format() {
	case FORMAT_JPEG:
		me.scanJPEG()
	case FORMAT_PNG:
		me.scanPNG()
	case FORMAT_GIF:
		me.decide(false)
	}

	return me.decided && me.result
}

func (me *Probe) decide(progressive bool) {
	me.decided = true
	me.result = progressive
	me.header = nil
}

// scanJPEG walks the marker segments up to the first scan. SOF2 means a
// progressive frame, SOF0/SOF1 a baseline one.
func (me *Probe) scanJPEG() {
	b := me.header
	i := 2

	for i+3 < len(b) {
		if b[i] != 0xFF {
			me.decide(false)
			return
		}

		marker := b[i+1]
		switch marker {
		case 0xC0, 0xC1:
			me.decide(false)
			return
		case 0xC2:
			me.decide(true)
			return
		case 0xD8, 0x01:
			i += 2
			continue
		case 0xDA:
			// start of scan without a frame header
			me.decide(false)
			return
		}
		if marker >= 0xD0 && marker <= 0xD7 {
			i += 2
			continue
		}

		length := int(b[i+2])<<8 | int(b[i+3])
		if length < 2 {
			me.decide(false)
			return
		}
		i += 2 + length
	}
}

// scanPNG reads the interlace flag, the last byte of the 13-byte IHDR data
// which directly follows the signature.
func (me *Probe) scanPNG() {
	if len(me.header) >= 29 {
		me.decide(me.header[28] == 1)
	}
}

// NewProbe creates a Probe
func NewProbe() *Probe {
	return new(Probe).Init()
}
