package hashset

import (
	"errors"
	"fmt"
)

// DefaultCapacity is the number of buckets a set starts with when none is given
const DefaultCapacity = 8

// ErrInvalidArgument is returned when a set is constructed with bad parameters
var ErrInvalidArgument = errors.New("invalid argument")

// HashFunc maps a value to an integer. It must be deterministic.
type HashFunc[T comparable] func(value T) int

// RehashEvent describes a completed rebuild of the bucket array
type RehashEvent struct {
	Size int
	From int
	To   int
}

// HashSet is a set of values spread over buckets by hash. Once there are more than
// two insertions per bucket, the bucket array doubles and every value is
// redistributed.
//
// A HashSet is not safe for concurrent use.
type HashSet[T comparable] struct {
	buckets  [][]T
	size     int
	hash     HashFunc[T]
	rehashes int
	onRehash func(RehashEvent)
}

// New creates an empty set with given number of buckets
func New[T comparable](capacity int, hash HashFunc[T]) (*HashSet[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidArgument, capacity)
	}
	if hash == nil {
		return nil, fmt.Errorf("%w: hash function is nil", ErrInvalidArgument)
	}
	return &HashSet[T]{
		buckets: make([][]T, capacity),
		hash:    hash,
	}, nil
}

// NewInts creates an empty set of integers, each integer being its own hash
func NewInts(capacity int) (*HashSet[int], error) {
	return New[int](capacity, IntHash)
}

// NewDefault creates an empty set of integers with DefaultCapacity buckets
func NewDefault() *HashSet[int] {
	set, _ := NewInts(DefaultCapacity)
	return set
}

// OnRehash registers a function to be called after every rebuild.
// Passing nil removes it.
func (s *HashSet[T]) OnRehash(fn func(RehashEvent)) {
	s.onRehash = fn
}

// bucketFor returns index of the bucket value belongs to, always in [0, capacity)
func (s *HashSet[T]) bucketFor(value T) int {
	capacity := len(s.buckets)
	i := s.hash(value) % capacity
	if i < 0 {
		i += capacity
	}
	return i
}

// Contains checks whether value was inserted
func (s *HashSet[T]) Contains(value T) bool {
	for _, e := range s.buckets[s.bucketFor(value)] {
		if e == value {
			return true
		}
	}
	return false
}

// Insert adds value to the set, growing it when it gets too dense
func (s *HashSet[T]) Insert(value T) {
	s.insertNoResize(value)
	if s.size > 2*len(s.buckets) {
		s.rehash()
	}
}

// insertNoResize counts the insertion before the duplicate check, so size is the
// number of insertions rather than the number of distinct values. Growth is
// scheduled on that count.
func (s *HashSet[T]) insertNoResize(value T) {
	s.size++
	i := s.bucketFor(value)
	for _, e := range s.buckets[i] {
		if e == value {
			return
		}
	}
	s.buckets[i] = append(s.buckets[i], value)
}

func (s *HashSet[T]) rehash() {
	from := len(s.buckets)
	fresh := &HashSet[T]{
		buckets: make([][]T, 2*from),
		hash:    s.hash,
	}
	for _, bucket := range s.buckets {
		for _, e := range bucket {
			fresh.insertNoResize(e)
		}
	}
	s.buckets = fresh.buckets
	s.rehashes++
	if s.onRehash != nil {
		s.onRehash(RehashEvent{Size: s.size, From: from, To: len(s.buckets)})
	}
}

// Size returns number of insertions, duplicates included
func (s *HashSet[T]) Size() int {
	return s.size
}

// Capacity returns current number of buckets
func (s *HashSet[T]) Capacity() int {
	return len(s.buckets)
}

// Len returns number of distinct values stored
func (s *HashSet[T]) Len() int {
	n := 0
	for _, bucket := range s.buckets {
		n += len(bucket)
	}
	return n
}

// Rehashes returns how many times the bucket array was rebuilt
func (s *HashSet[T]) Rehashes() int {
	return s.rehashes
}

// Each calls fn for every stored value, bucket by bucket
func (s *HashSet[T]) Each(fn func(T)) {
	for _, bucket := range s.buckets {
		for _, e := range bucket {
			fn(e)
		}
	}
}

// Values returns all stored values
func (s *HashSet[T]) Values() []T {
	values := make([]T, 0, s.Len())
	s.Each(func(e T) {
		values = append(values, e)
	})
	return values
}
