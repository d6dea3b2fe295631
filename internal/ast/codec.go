package ast

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"

	"jolt/internal/hygiene"
	"jolt/internal/source"
)

// msgpack codecs for the identifier types. Symbols travel as their
// text and are re-interned on decode, so the wire format never leaks
// table indices; a syntax context travels as its raw token, opaque but
// re-derivable on the other side.
//
// Wire shapes:
//
//	Span         [file, start, end]
//	Ident        [sym, ctxt, Span, optional]
//	ID           [sym, ctxt]
//	BindingIdent [Ident, nil | [Span, type]]
//	PrivateName  [Span, Ident]

var (
	_ msgpack.CustomEncoder = (*Ident)(nil)
	_ msgpack.CustomDecoder = (*Ident)(nil)
	_ msgpack.CustomEncoder = (*ID)(nil)
	_ msgpack.CustomDecoder = (*ID)(nil)
	_ msgpack.CustomEncoder = (*BindingIdent)(nil)
	_ msgpack.CustomDecoder = (*BindingIdent)(nil)
	_ msgpack.CustomEncoder = (*PrivateName)(nil)
	_ msgpack.CustomDecoder = (*PrivateName)(nil)
)

func encodeSpan(enc *msgpack.Encoder, sp source.Span) error {
	if err := enc.EncodeArrayLen(3); err != nil {
		return err
	}
	if err := enc.EncodeUint32(uint32(sp.File)); err != nil {
		return err
	}
	if err := enc.EncodeUint32(sp.Start); err != nil {
		return err
	}
	return enc.EncodeUint32(sp.End)
}

func decodeSpan(dec *msgpack.Decoder) (source.Span, error) {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return source.Span{}, err
	}
	if n != 3 {
		return source.Span{}, fmt.Errorf("span: unexpected field count %d", n)
	}
	file, err := dec.DecodeUint32()
	if err != nil {
		return source.Span{}, err
	}
	start, err := dec.DecodeUint32()
	if err != nil {
		return source.Span{}, err
	}
	end, err := dec.DecodeUint32()
	if err != nil {
		return source.Span{}, err
	}
	return source.Span{File: source.FileID(file), Start: start, End: end}, nil
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (i *Ident) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(4); err != nil {
		return err
	}
	if err := enc.EncodeString(i.Sym.String()); err != nil {
		return err
	}
	if err := enc.EncodeUint32(uint32(i.Ctxt)); err != nil {
		return err
	}
	if err := encodeSpan(enc, i.Span); err != nil {
		return err
	}
	return enc.EncodeBool(i.Optional)
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (i *Ident) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if n != 4 {
		return fmt.Errorf("ident: unexpected field count %d", n)
	}
	text, err := dec.DecodeString()
	if err != nil {
		return err
	}
	ctxt, err := dec.DecodeUint32()
	if err != nil {
		return err
	}
	span, err := decodeSpan(dec)
	if err != nil {
		return err
	}
	optional, err := dec.DecodeBool()
	if err != nil {
		return err
	}
	i.Sym = source.Intern(text)
	i.Ctxt = hygiene.SyntaxContext(ctxt)
	i.Span = span
	i.Optional = optional
	return nil
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (id *ID) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(2); err != nil {
		return err
	}
	if err := enc.EncodeString(id.Sym.String()); err != nil {
		return err
	}
	return enc.EncodeUint32(uint32(id.Ctxt))
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (id *ID) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if n != 2 {
		return fmt.Errorf("id: unexpected field count %d", n)
	}
	text, err := dec.DecodeString()
	if err != nil {
		return err
	}
	ctxt, err := dec.DecodeUint32()
	if err != nil {
		return err
	}
	id.Sym = source.Intern(text)
	id.Ctxt = hygiene.SyntaxContext(ctxt)
	return nil
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (b *BindingIdent) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(2); err != nil {
		return err
	}
	if err := b.Ident.EncodeMsgpack(enc); err != nil {
		return err
	}
	if b.TypeAnn == nil {
		return enc.EncodeNil()
	}
	if err := enc.EncodeArrayLen(2); err != nil {
		return err
	}
	if err := encodeSpan(enc, b.TypeAnn.Span); err != nil {
		return err
	}
	return enc.EncodeString(b.TypeAnn.Type.String())
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (b *BindingIdent) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if n != 2 {
		return fmt.Errorf("binding ident: unexpected field count %d", n)
	}
	if err := b.Ident.DecodeMsgpack(dec); err != nil {
		return err
	}
	code, err := dec.PeekCode()
	if err != nil {
		return err
	}
	if code == msgpcode.Nil {
		b.TypeAnn = nil
		return dec.DecodeNil()
	}
	if n, err := dec.DecodeArrayLen(); err != nil {
		return err
	} else if n != 2 {
		return fmt.Errorf("type annotation: unexpected field count %d", n)
	}
	span, err := decodeSpan(dec)
	if err != nil {
		return err
	}
	text, err := dec.DecodeString()
	if err != nil {
		return err
	}
	b.TypeAnn = &TypeAnn{Span: span, Type: source.Intern(text)}
	return nil
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (p *PrivateName) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(2); err != nil {
		return err
	}
	if err := encodeSpan(enc, p.Span); err != nil {
		return err
	}
	return p.Ident.EncodeMsgpack(enc)
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (p *PrivateName) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if n != 2 {
		return fmt.Errorf("private name: unexpected field count %d", n)
	}
	span, err := decodeSpan(dec)
	if err != nil {
		return err
	}
	if err := p.Ident.DecodeMsgpack(dec); err != nil {
		return err
	}
	p.Span = span
	return nil
}
