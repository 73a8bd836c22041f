package header

import (
	"errors"
	"fmt"

	flatbuffers "github.com/google/flatbuffers/go"
	digest "github.com/opencontainers/go-digest"

	"github.com/meigma/filelist/header/internal/fb"
)

// wireVersion is the FlatBuffers payload version written by Marshal.
const wireVersion = 1

// Marshal encodes h into its wire form.
func Marshal(h *Header, opts ...EncodeOption) ([]byte, error) {
	cfg := encodeConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	payload, err := compress(cfg.compression, buildPayload(h))
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(payload)+1)
	out = append(out, byte(cfg.compression))
	return append(out, payload...), nil
}

// Unmarshal decodes a header produced by Marshal.
//
// Tags must appear in strictly ascending order; duplicate or unsorted tags
// are rejected as ErrInvalidHeader.
func Unmarshal(data []byte, opts ...DecodeOption) (*Header, error) {
	cfg := decodeConfig{maxSize: DefaultMaxSize}
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty data", ErrInvalidHeader)
	}

	payload, err := decompress(Compression(data[0]), data[1:], cfg.maxSize)
	if err != nil {
		return nil, err
	}
	return parsePayload(payload)
}

// Digest returns the sha256 digest of encoded header data.
func Digest(data []byte) digest.Digest {
	return digest.FromBytes(data)
}

// Verify checks that data matches the expected digest.
func Verify(data []byte, expected digest.Digest) error {
	if err := expected.Validate(); err != nil {
		return fmt.Errorf("header: invalid digest %q: %w", expected, err)
	}
	if got := expected.Algorithm().FromBytes(data); got != expected {
		return fmt.Errorf("%w: expected %s, got %s", ErrDigestMismatch, expected, got)
	}
	return nil
}

func buildPayload(h *Header) []byte {
	builder := flatbuffers.NewBuilder(1024)
	tags := h.Tags()

	// Build tags in reverse order (FlatBuffers requirement)
	tagOffsets := make([]flatbuffers.UOffsetT, len(tags))
	for i := len(tags) - 1; i >= 0; i-- {
		e := h.tags[tags[i]]

		var strsOffset, u32sOffset flatbuffers.UOffsetT
		switch e.kind {
		case KindStrings:
			strOffsets := make([]flatbuffers.UOffsetT, len(e.strs))
			for j, s := range e.strs {
				strOffsets[j] = builder.CreateString(s)
			}
			fb.TagStartStringsVector(builder, len(strOffsets))
			for j := len(strOffsets) - 1; j >= 0; j-- {
				builder.PrependUOffsetT(strOffsets[j])
			}
			strsOffset = builder.EndVector(len(strOffsets))
		case KindUint32s:
			fb.TagStartUint32sVector(builder, len(e.u32s))
			for j := len(e.u32s) - 1; j >= 0; j-- {
				builder.PrependUint32(e.u32s[j])
			}
			u32sOffset = builder.EndVector(len(e.u32s))
		}

		fb.TagStart(builder)
		fb.TagAddId(builder, uint32(tags[i]))
		fb.TagAddKind(builder, fb.Kind(e.kind))
		if strsOffset != 0 {
			fb.TagAddStrings(builder, strsOffset)
		}
		if u32sOffset != 0 {
			fb.TagAddUint32s(builder, u32sOffset)
		}
		tagOffsets[i] = fb.TagEnd(builder)
	}

	fb.HeaderStartTagsVector(builder, len(tagOffsets))
	for i := len(tagOffsets) - 1; i >= 0; i-- {
		builder.PrependUOffsetT(tagOffsets[i])
	}
	tagsOffset := builder.EndVector(len(tagOffsets))

	fb.HeaderStart(builder)
	fb.HeaderAddVersion(builder, wireVersion)
	fb.HeaderAddTags(builder, tagsOffset)
	builder.Finish(fb.HeaderEnd(builder))
	return builder.FinishedBytes()
}

func parsePayload(payload []byte) (h *Header, err error) {
	defer func() {
		if r := recover(); r != nil {
			h = nil
			err = fmt.Errorf("%w: %v", ErrInvalidHeader, r)
		}
	}()
	if len(payload) < flatbuffers.SizeUOffsetT {
		return nil, fmt.Errorf("%w: truncated payload", ErrInvalidHeader)
	}

	root := fb.GetRootAsHeader(payload, 0)
	if v := root.Version(); v != wireVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidHeader, v)
	}

	if err := checkVectorLen("tags", root.TagsLength(), payload); err != nil {
		return nil, err
	}

	h = New()
	var fbTag fb.Tag
	prev := int64(-1)
	for i := range root.TagsLength() {
		if !root.Tags(&fbTag, i) {
			return nil, errors.New("header: failed to read tag")
		}
		id := int64(fbTag.Id())
		if id <= prev {
			return nil, fmt.Errorf("%w: tag %d out of order", ErrInvalidHeader, id)
		}
		prev = id

		e := &entry{kind: Kind(fbTag.Kind())}
		switch e.kind {
		case KindStrings:
			if err := checkVectorLen("strings", fbTag.StringsLength(), payload); err != nil {
				return nil, err
			}
			e.strs = make([]string, fbTag.StringsLength())
			for j := range e.strs {
				e.strs[j] = string(fbTag.Strings(j))
			}
		case KindUint32s:
			if err := checkVectorLen("uint32s", fbTag.Uint32sLength(), payload); err != nil {
				return nil, err
			}
			e.u32s = make([]uint32, fbTag.Uint32sLength())
			for j := range e.u32s {
				e.u32s[j] = fbTag.Uint32s(j)
			}
		default:
			return nil, fmt.Errorf("%w: tag %d has unknown kind %d", ErrInvalidHeader, id, e.kind)
		}
		h.tags[Tag(id)] = e
	}
	return h, nil
}

// checkVectorLen rejects a declared vector length that cannot fit in
// payload. Every element of the vectors we read takes at least 4 bytes.
func checkVectorLen(name string, n int, payload []byte) error {
	if n < 0 || uint64(n)*4 > uint64(len(payload)) {
		return fmt.Errorf("%w: %s vector length %d exceeds payload", ErrInvalidHeader, name, n)
	}
	return nil
}
