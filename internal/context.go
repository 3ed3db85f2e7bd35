package internal

// Context carries a value down the owner tree without threading it through
// every function. Reads resolve against the nearest enclosing owner that Set
// a value, falling back to the default.
type Context struct {
	def any
}

func (r *Runtime) NewContext(def any) *Context {
	return &Context{def: def}
}

// Value returns the value set on the nearest enclosing owner, or the default
// when no owner in the chain holds one.
func (c *Context) Value() any {
	owner := GetRuntime().CurrentOwner()

	mu.Lock()
	defer mu.Unlock()

	for o := owner; o != nil; o = o.parent {
		if v, ok := o.values[c]; ok {
			return v
		}
	}
	return c.def
}

// Set stores a value on the current owner, visible to Value calls from that
// owner and its descendants. Outside any owner the call is a no-op.
func (c *Context) Set(v any) {
	owner := GetRuntime().CurrentOwner()
	if owner == nil {
		return
	}

	mu.Lock()
	if owner.values == nil {
		owner.values = make(map[*Context]any)
	}
	owner.values[c] = v
	mu.Unlock()
}
