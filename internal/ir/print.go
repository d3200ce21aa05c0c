package ir

import (
	"fmt"
	"strings"
)

// Print renders an operation and any nested region in a stable
// textual form. Naming is deterministic: results are numbered in
// print order, free operand values get %vN on first sight, and block
// arguments get %argN from a single global counter. Printing the same
// operation twice yields identical text.
func Print(op *Operation) string {
	p := &printer{names: make(map[Value]string)}
	p.printOp(op, 0)
	return p.sb.String()
}

type printer struct {
	sb         strings.Builder
	names      map[Value]string
	nextResult int
	nextFree   int
	nextArg    int
}

func (p *printer) name(v Value) string {
	if n, ok := p.names[v]; ok {
		return n
	}
	n := fmt.Sprintf("%%v%d", p.nextFree)
	p.nextFree++
	p.names[v] = n
	return n
}

func (p *printer) printOp(op *Operation, depth int) {
	pad := strings.Repeat("  ", depth)

	operandNames := make([]string, op.NumOperands())
	for i, v := range op.Operands() {
		operandNames[i] = p.name(v)
	}

	var resultNames []string
	for _, r := range op.Results() {
		n := fmt.Sprintf("%%%d", p.nextResult)
		p.nextResult++
		p.names[r] = n
		resultNames = append(resultNames, n)
	}

	p.sb.WriteString(pad)
	if len(resultNames) > 0 {
		p.sb.WriteString(strings.Join(resultNames, ", "))
		p.sb.WriteString(" = ")
	}
	fmt.Fprintf(&p.sb, "%q(%s)", op.Name(), strings.Join(operandNames, ", "))

	if attrs := op.Attrs(); len(attrs) > 0 {
		parts := make([]string, len(attrs))
		for i, na := range attrs {
			parts[i] = fmt.Sprintf("%s = %s", na.Name, na.Value)
		}
		fmt.Fprintf(&p.sb, " {%s}", strings.Join(parts, ", "))
	}

	if r := op.Region(); r != nil {
		p.sb.WriteString(" ({\n")
		p.printBlock(r.Entry(), depth+1)
		p.sb.WriteString(pad)
		p.sb.WriteString("})")
	}

	fmt.Fprintf(&p.sb, " : %s\n", p.signature(op))
}

func (p *printer) printBlock(b *Block, depth int) {
	pad := strings.Repeat("  ", depth)

	argParts := make([]string, b.NumArguments())
	for i, arg := range b.Arguments() {
		n := fmt.Sprintf("%%arg%d", p.nextArg)
		p.nextArg++
		p.names[arg] = n
		argParts[i] = fmt.Sprintf("%s: %s", n, arg.Type())
	}
	fmt.Fprintf(&p.sb, "%s^entry(%s):\n", pad, strings.Join(argParts, ", "))

	for _, op := range b.Operations() {
		p.printOp(op, depth+1)
	}
}

func (p *printer) signature(op *Operation) string {
	ins := make([]string, op.NumOperands())
	for i, v := range op.Operands() {
		ins[i] = v.Type().String()
	}
	outs := make([]string, op.NumResults())
	for i, t := range op.ResultTypes() {
		outs[i] = t.String()
	}
	switch len(outs) {
	case 0:
		return fmt.Sprintf("(%s) -> ()", strings.Join(ins, ", "))
	case 1:
		return fmt.Sprintf("(%s) -> %s", strings.Join(ins, ", "), outs[0])
	default:
		return fmt.Sprintf("(%s) -> (%s)", strings.Join(ins, ", "), strings.Join(outs, ", "))
	}
}
