package calc

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

type (
	funcopt struct {
		name string
		fn   Func
	}
	funcsopt map[string]Func
)

// parsectx holds general data for parsing.
type parsectx struct {
	// funcs is the set of names the parser accepts. Any other identifier is
	// rejected with a NameError.
	funcs map[string]Func
	// owned indicates that funcs is a private copy which options may modify.
	owned bool
}

// own ensures that p.funcs may be modified without changing the builtins.
func (p parsectx) own() parsectx {
	if p.owned {
		return p
	}
	m := make(map[string]Func, len(p.funcs)+1)
	for k, v := range p.funcs {
		m[k] = v
	}
	p.funcs = m
	p.owned = true
	return p
}

// ParseFunc adds a function to the vocabulary for one parse, or replaces a
// builtin of the same name. To remove a name from the vocabulary, pass nil
// for fn.
func ParseFunc(name string, fn Func) ParseOption {
	return &funcopt{name, fn}
}

func (o *funcopt) parseOption(p parsectx) parsectx {
	p = p.own()
	if o.fn == nil {
		delete(p.funcs, o.name)
		return p
	}
	p.funcs[o.name] = o.fn
	return p
}

// ParseFuncs adds or replaces a group of functions. Names mapped to nil are
// removed from the vocabulary.
func ParseFuncs(fns map[string]Func) ParseOption {
	return funcsopt(fns)
}

func (o funcsopt) parseOption(p parsectx) parsectx {
	p = p.own()
	for k, v := range o {
		if v == nil {
			delete(p.funcs, k)
			continue
		}
		p.funcs[k] = v
	}
	return p
}
