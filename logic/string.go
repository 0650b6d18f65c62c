package logic

import "strings"

func (f *Formula) String() string {
	buf := &strings.Builder{}
	f.write(buf)
	return buf.String()
}

func (f *Formula) write(buf *strings.Builder) {
	switch f.Kind {
	case TrueKind:
		buf.WriteString("True")
	case FalseKind:
		buf.WriteString("False")
	case PredicateKind:
		buf.WriteString(f.Pred.String())
	case AppliedKind:
		buf.WriteString(f.Pred.String())
		buf.WriteByte('(')
		buf.WriteString(f.Target.String())
		buf.WriteByte(')')
	case BinderKind:
		buf.WriteString(f.Binder.String())
	case NotKind:
		buf.WriteByte('~')
		f.writeOperand(buf, f.Args[0], NotKind)
	case AndKind, OrKind:
		sep := " & "
		if f.Kind == OrKind {
			sep = " | "
		}
		for i, arg := range f.Args {
			if i > 0 {
				buf.WriteString(sep)
			}
			f.writeOperand(buf, arg, f.Kind)
		}
	case ImpliesKind, EquivalentKind:
		buf.WriteString(f.Kind.String())
		buf.WriteByte('(')
		for i, arg := range f.Args {
			if i > 0 {
				buf.WriteString(", ")
			}
			arg.write(buf)
		}
		buf.WriteByte(')')
	}
}

func (f *Formula) writeOperand(buf *strings.Builder, arg *Formula, parent Kind) {
	paren := false
	switch arg.Kind {
	case AndKind, OrKind:
		paren = parent == NotKind || arg.Kind != parent
	}
	if paren {
		buf.WriteByte('(')
	}
	arg.write(buf)
	if paren {
		buf.WriteByte(')')
	}
}
