package ir

import "testing"

func TestBuilderCreateCopiesInputs(t *testing.T) {
	b := NewBuilder()
	operands := []Value{NewPlaceholder(ScalarType{Elem: F32})}
	attrs := []NamedAttr{{Name: "sizes", Value: IntArrayAttr{1, 0}}}

	op := b.Create("test.op", UnknownLoc, nil, operands, attrs)

	// Caller-side mutation after Create must not leak in.
	operands[0] = NewPlaceholder(ScalarType{Elem: I32})
	attrs[0].Value.(IntArrayAttr)[0] = 99

	if op.Operand(0).Type().String() != "f32" {
		t.Error("Create aliases the caller's operand slice")
	}
	stored, _ := op.Attr("sizes")
	if stored.(IntArrayAttr)[0] != 1 {
		t.Error("Create aliases the caller's attribute storage")
	}
}

func TestAttachRegionArgCountMismatchPanics(t *testing.T) {
	b := NewBuilder()
	op := b.Create("test.op", UnknownLoc, nil,
		[]Value{NewPlaceholder(ScalarType{Elem: F32})}, nil)

	defer func() {
		if recover() == nil {
			t.Error("AttachRegion with mismatched arg count should panic")
		}
	}()
	b.AttachRegion(op, []Type{ScalarType{Elem: F32}, ScalarType{Elem: F32}})
}

func TestAttachRegionSecondRegionPanics(t *testing.T) {
	b := NewBuilder()
	op := b.Create("test.op", UnknownLoc, nil, nil, nil)
	b.AttachRegion(op, nil)

	defer func() {
		if recover() == nil {
			t.Error("attaching a second region should panic")
		}
	}()
	b.AttachRegion(op, nil)
}

func TestAttachRegionAliasesOperandsPositionally(t *testing.T) {
	b := NewBuilder()
	op := b.Create("test.op", UnknownLoc, nil, []Value{
		NewPlaceholder(NewTensorType(Shape{4}, F32)),
		NewPlaceholder(ScalarType{Elem: F32}),
	}, nil)
	entry := b.AttachRegion(op, []Type{ScalarType{Elem: F32}, ScalarType{Elem: F32}})

	if entry.NumArguments() != 2 {
		t.Fatalf("NumArguments() = %d, want 2", entry.NumArguments())
	}
	for i := 0; i < 2; i++ {
		arg := entry.Argument(i)
		if arg.Owner() != entry || arg.Index() != i {
			t.Errorf("Argument(%d) has wrong owner or index", i)
		}
	}
	if op.Region().Owner() != op {
		t.Error("Region().Owner() is not the attached op")
	}
}

// buildRegionOp constructs an op with one region whose body consumes
// the second entry argument:
//
//	test.outer(%x, %acc) ({
//	  ^entry(%a0: f32, %a1: f32):
//	    %s = test.addf(%a1, %a1)
//	    test.yield(%s)
//	})
func buildRegionOp(t *testing.T) *Operation {
	t.Helper()
	b := NewBuilder()
	op := b.Create("test.outer", UnknownLoc, nil, []Value{
		NewPlaceholder(NewTensorType(Shape{4}, F32)),
		NewPlaceholder(ScalarType{Elem: F32}),
	}, []NamedAttr{{Name: "tag", Value: StringAttr("sum")}})

	entry := b.AttachRegion(op, []Type{ScalarType{Elem: F32}, ScalarType{Elem: F32}})
	sum := b.Create("test.addf", UnknownLoc,
		[]Type{ScalarType{Elem: F32}},
		[]Value{entry.Argument(1), entry.Argument(1)}, nil)
	entry.Append(sum)
	entry.Append(b.Create("test.yield", UnknownLoc, nil,
		[]Value{sum.Result(0)}, nil))
	return op
}

func TestCloneRegionIntoDeepCopies(t *testing.T) {
	b := NewBuilder()
	src := buildRegionOp(t)

	dst := b.Create(src.Name(), UnknownLoc, nil, src.Operands(), src.Attrs())
	b.CloneRegionInto(dst, src.Region())

	srcEntry := src.Region().Entry()
	dstEntry := dst.Region().Entry()

	if dst.Region() == src.Region() || dstEntry == srcEntry {
		t.Fatal("cloned region shares storage with source")
	}
	if dstEntry.NumArguments() != srcEntry.NumArguments() {
		t.Fatalf("cloned entry has %d args, want %d", dstEntry.NumArguments(), srcEntry.NumArguments())
	}

	srcOps := srcEntry.Operations()
	dstOps := dstEntry.Operations()
	if len(dstOps) != len(srcOps) {
		t.Fatalf("cloned body has %d ops, want %d", len(dstOps), len(srcOps))
	}
	for i := range srcOps {
		if dstOps[i] == srcOps[i] {
			t.Errorf("cloned body op %d is the source op, not a copy", i)
		}
		if dstOps[i].Name() != srcOps[i].Name() {
			t.Errorf("cloned body op %d name = %q, want %q", i, dstOps[i].Name(), srcOps[i].Name())
		}
	}

	// Intra-region references were remapped: the clone's addf reads
	// the clone's entry argument, and its yield reads the clone's
	// addf result.
	if dstOps[0].Operand(0) != Value(dstEntry.Argument(1)) {
		t.Error("cloned addf does not read the cloned entry argument")
	}
	if dstOps[1].Operand(0) != Value(dstOps[0].Result(0)) {
		t.Error("cloned yield does not read the cloned addf result")
	}

	// Independence: growing the clone's body leaves the source alone.
	dstEntry.Append(b.Create("test.extra", UnknownLoc, nil, nil, nil))
	if len(srcEntry.Operations()) != len(srcOps) {
		t.Error("mutating the cloned region changed the source region")
	}
}

func TestRegionWalkVisitsNested(t *testing.T) {
	b := NewBuilder()
	op := buildRegionOp(t)

	// Nest another region one level down.
	inner := op.Region().Entry().Operations()[0]
	nested := b.AttachRegion(inner, []Type{ScalarType{Elem: F32}, ScalarType{Elem: F32}})
	nested.Append(b.Create("test.nested", UnknownLoc, nil, nil, nil))

	var names []string
	op.Region().Walk(func(o *Operation) {
		names = append(names, o.Name())
	})
	want := []string{"test.addf", "test.nested", "test.yield"}
	if len(names) != len(want) {
		t.Fatalf("Walk visited %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("Walk visited %v, want %v", names, want)
		}
	}
}
