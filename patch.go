package jsondelta

import "fmt"

// PatchConfig are any possible configuration parameters for applying patches
type PatchConfig struct {
	// Equal is used by test operations, defaults to Equal
	Equal EqualFunc
}

// PatchOption is a function that adjusts a PatchConfig
type PatchOption func(cfg *PatchConfig)

// OptionPatchEqual overrides the equality test operations use
func OptionPatchEqual(eq EqualFunc) PatchOption {
	return func(cfg *PatchConfig) {
		cfg.Equal = eq
	}
}

// Patch applies a change script to a deep copy of base and returns the
// result. base is never modified. operations are applied in order, the first
// one that fails stops the patch with a *PatchError wrapping ErrInvalidPath
// or ErrTestFailed. there's no rollback: the error's snapshot includes the
// edits of every operation before the failing one
func Patch(base *Value, ops Operations, opts ...PatchOption) (*Value, error) {
	cfg := &PatchConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.Equal == nil {
		cfg.Equal = Equal
	}

	p := &patcher{cfg: cfg, doc: base.Clone()}
	if p.doc == nil {
		p.doc = Null()
	}
	for i, op := range ops {
		if err := p.apply(op); err != nil {
			return nil, &PatchError{Index: i, Op: op, Value: p.doc.Clone(), Err: err}
		}
	}
	return p.doc, nil
}

// patcher is the working state of a single Patch call
type patcher struct {
	cfg *PatchConfig
	doc *Value
}

func (p *patcher) apply(op Operation) error {
	switch o := op.(type) {
	case *AddOp:
		return p.add(o.Path, o.Value.Clone())
	case *RemoveOp:
		return p.remove(o.Path)
	case *ReplaceOp:
		if err := p.remove(o.Path); err != nil {
			return err
		}
		return p.add(o.Path, o.Value.Clone())
	case *MoveOp:
		v, err := p.get(o.From)
		if err != nil {
			return err
		}
		if err := p.remove(o.From); err != nil {
			return err
		}
		return p.add(o.Path, v)
	case *CopyOp:
		v, err := p.get(o.From)
		if err != nil {
			return err
		}
		return p.add(o.Path, v.Clone())
	case *TestOp:
		v, err := p.get(o.Path)
		if err != nil {
			return err
		}
		if !p.cfg.Equal(v, o.Value) {
			return ErrTestFailed
		}
		return nil
	case nil:
		return fmt.Errorf("%w: nil operation", ErrInvalidOperation)
	default:
		return fmt.Errorf("%w: unknown operation type %T", ErrInvalidOperation, op)
	}
}

func (p *patcher) add(ptr Pointer, v *Value) error {
	if v == nil {
		v = Null()
	}
	if ptr.IsRoot() {
		p.doc = v
		return nil
	}
	if !ptr.Add(p.doc, v) {
		return ErrInvalidPath
	}
	return nil
}

func (p *patcher) remove(ptr Pointer) error {
	if ptr.IsRoot() {
		p.doc = Null()
		return nil
	}
	if !ptr.Remove(p.doc) {
		return ErrInvalidPath
	}
	return nil
}

func (p *patcher) get(ptr Pointer) (*Value, error) {
	v, ok := ptr.Get(p.doc)
	if !ok {
		return nil, ErrInvalidPath
	}
	return v, nil
}
