package ast

import (
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"jolt/internal/hygiene"
	"jolt/internal/source"
)

func TestIdentCodecRoundTrip(t *testing.T) {
	in := New(source.Intern("useState"), span(2, 14, 22))
	in.Ctxt = hygiene.SyntaxContext(9)
	in.Optional = true

	raw, err := msgpack.Marshal(&in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out Ident
	if err := msgpack.Unmarshal(raw, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	// The decoder re-interns, so the handles must land on the same
	// table entry within one process.
	if out != in {
		t.Errorf("round trip changed the identifier: %v vs %v", out, in)
	}
}

func TestIDCodecRoundTrip(t *testing.T) {
	in := ID{Sym: source.Intern("top"), Ctxt: hygiene.SyntaxContext(3)}

	raw, err := msgpack.Marshal(&in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out ID
	if err := msgpack.Unmarshal(raw, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out != in {
		t.Errorf("round trip changed the key: %v vs %v", out, in)
	}
}

func TestBindingIdentCodecAnnotation(t *testing.T) {
	in := BindIdent(New(source.Intern("n"), span(1, 0, 1)))
	in.TypeAnn = &TypeAnn{Span: span(1, 3, 9), Type: source.Intern("number")}

	raw, err := msgpack.Marshal(&in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out BindingIdent
	if err := msgpack.Unmarshal(raw, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Ident != in.Ident {
		t.Errorf("identifier changed: %v vs %v", out.Ident, in.Ident)
	}
	if out.TypeAnn == nil || *out.TypeAnn != *in.TypeAnn {
		t.Errorf("annotation changed: %+v vs %+v", out.TypeAnn, in.TypeAnn)
	}

	// And without an annotation the nil survives.
	bare := BindIdent(New(source.Intern("m"), span(1, 0, 1)))
	raw, err = msgpack.Marshal(&bare)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var bareOut BindingIdent
	if err := msgpack.Unmarshal(raw, &bareOut); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if bareOut.TypeAnn != nil {
		t.Errorf("nil annotation became %+v", bareOut.TypeAnn)
	}
}

func TestPrivateNameCodec(t *testing.T) {
	in := PrivateName{Span: span(4, 10, 17), Ident: New(source.Intern("cache"), span(4, 11, 17))}

	raw, err := msgpack.Marshal(&in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out PrivateName
	if err := msgpack.Unmarshal(raw, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out != in {
		t.Errorf("round trip changed the private name: %v vs %v", out, in)
	}
}

func TestIdentCodecKeepsCtxtOpaque(t *testing.T) {
	// The context travels as a bare token: decoding must not mint a
	// fresh one or consult the allocator.
	in := FromText("scoped")
	in.Ctxt = hygiene.SyntaxContext(12345)

	raw, err := msgpack.Marshal(&in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out Ident
	if err := msgpack.Unmarshal(raw, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Ctxt != hygiene.SyntaxContext(12345) {
		t.Errorf("context token changed: %v", out.Ctxt)
	}
}
