package json

import "sync/atomic"

type member struct {
	key   string
	final bool
	value Value
}

// Object is an ordered mapping of string key to Value, preserving
// insertion order for deterministic re-serialization. A member inserted
// via SetFinalValue cannot subsequently be replaced by either SetValue or
// SetFinalValue.
type Object struct {
	locked  atomic.Bool
	members []member
	index   map[string]int
}

// NewObject returns an empty, unlocked Object.
func NewObject() *Object {
	return &Object{index: make(map[string]int)}
}

// Len reports the number of members in o.
func (o *Object) Len() int { return len(o.members) }

// Has reports whether key is present in o.
func (o *Object) Has(key string) bool {
	_, ok := o.index[key]
	return ok
}

// IsFinal reports whether key is present in o and was inserted (or last
// overwritten) via SetFinalValue.
func (o *Object) IsFinal(key string) bool {
	idx, ok := o.index[key]
	return ok && o.members[idx].final
}

// GetValue returns the value stored under key, or UnknownMember if no
// such key exists.
func (o *Object) GetValue(key string) (Value, error) {
	idx, ok := o.index[key]
	if !ok {
		return Value{}, errUnknown("no such member %q", key)
	}
	return o.members[idx].value, nil
}

// SetValue inserts or overwrites the value stored under key. It fails
// with Locked if o has been locked, or FinalMember if key was previously
// set via SetFinalValue.
func (o *Object) SetValue(key string, v Value) error {
	return o.set(key, v, false)
}

// SetFinalValue inserts or overwrites the value stored under key and
// marks it final, so that any later SetValue or SetFinalValue on the
// same key fails with FinalMember. It fails with Locked if o has been
// locked, or FinalMember if key was already final.
func (o *Object) SetFinalValue(key string, v Value) error {
	return o.set(key, v, true)
}

func (o *Object) set(key string, v Value, final bool) error {
	if o.locked.Load() {
		return errLocked("object is locked")
	}

	if idx, ok := o.index[key]; ok {
		if o.members[idx].final {
			return errFinal("member %q is final", key)
		}
		o.members[idx].value = v
		o.members[idx].final = final
		return nil
	}

	o.index[key] = len(o.members)
	o.members = append(o.members, member{key: key, value: v, final: final})
	return nil
}

// Names returns o's member keys in insertion order.
func (o *Object) Names() []string {
	names := make([]string, len(o.members))
	for i, m := range o.members {
		names[i] = m.key
	}
	return names
}

// Lock prevents further mutation of o. Lock is idempotent and monotonic:
// once locked, an Object never unlocks.
func (o *Object) Lock() { o.locked.Store(true) }

// Locked reports whether o has been locked.
func (o *Object) Locked() bool { return o.locked.Load() }
