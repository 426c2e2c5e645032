// file: internals/helpers/optional.go
package helper

import "encoding/json"

// Opt membedakan tiga keadaan field patch JSON:
// tidak dikirim (Set=false), dikirim null (Set=true, Valid=false),
// dikirim nilai (Set=true, Valid=true).
// Pointer biasa tidak bisa membedakan "tidak dikirim" vs "null".
type Opt[T any] struct {
	Set   bool
	Valid bool
	Val   T
}

func (o *Opt[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Valid = false
		var zero T
		o.Val = zero
		return nil
	}
	if err := json.Unmarshal(data, &o.Val); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

// Ptr mengembalikan nilai sebagai pointer (nil saat null).
func (o Opt[T]) Ptr() *T {
	if !o.Valid {
		return nil
	}
	v := o.Val
	return &v
}

// OptOf membungkus nilai menjadi Opt yang ter-set (dipakai di test/seed).
func OptOf[T any](v T) Opt[T] {
	return Opt[T]{Set: true, Valid: true, Val: v}
}

// OptNull membungkus null eksplisit.
func OptNull[T any]() Opt[T] {
	return Opt[T]{Set: true}
}
