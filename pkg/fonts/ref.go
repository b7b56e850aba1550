package fonts

import (
	"golang.org/x/image/font"

	perr "github.com/matzehuels/dbdplan/pkg/errors"
)

// Kind tells which case a Ref holds.
type Kind int

const (
	KindDefault Kind = iota // use the caller's default face
	KindFace                // explicit face handle
	KindLookup              // descriptor resolved through a Library
)

func (k Kind) String() string {
	switch k {
	case KindFace:
		return "face"
	case KindLookup:
		return "lookup"
	default:
		return "default"
	}
}

// Ref selects the font for one draw call. The zero value is Default().
type Ref struct {
	kind Kind
	face font.Face
	desc Descriptor
}

// Face refers to an already built face.
func Face(f font.Face) Ref { return Ref{kind: KindFace, face: f} }

// Lookup refers to a face the library builds from d.
func Lookup(d Descriptor) Ref { return Ref{kind: KindLookup, desc: d} }

// Default refers to whatever default face the caller supplies.
func Default() Ref { return Ref{} }

// Kind returns the case held by r.
func (r Ref) Kind() Kind { return r.kind }

func (r Ref) String() string {
	if r.kind == KindLookup {
		return "lookup " + r.desc.String()
	}
	return r.kind.String()
}

// Resolve turns r into a face. Lookups need lib; Default returns fallback.
func (r Ref) Resolve(lib *Library, fallback font.Face) (font.Face, error) {
	switch r.kind {
	case KindFace:
		if r.face == nil {
			return nil, perr.New(perr.ErrCodeInvalidInput, "font reference holds no face")
		}
		return r.face, nil
	case KindLookup:
		if lib == nil {
			return nil, perr.New(perr.ErrCodeInvalidInput, "font lookup %s without a font library", r.desc)
		}
		return lib.Face(r.desc)
	default:
		if fallback == nil {
			return nil, perr.New(perr.ErrCodeInvalidInput, "no default font configured")
		}
		return fallback, nil
	}
}
