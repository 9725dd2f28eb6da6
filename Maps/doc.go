/*
Package Maps implements maps keyed by arbitrary comparable types and sorted maps.

# Collisions
HashMap and LinkedHashMap store the keys of every bucket in a red-black tree instead of a chain. Keys in a bucket
are ordered by hash first, then by their natural order when both have one, and finally by an identity assigned to each
entry when it's created. Lookups that reach keys that can't be ordered search both subtrees, so even a hash function
returning a constant gives correct results, only slower.

# Growing
The bucket array doubles once the size exceeds its length times the load factor. Every entry is moved to its new
bucket keeping its identity and its place in the insertion order. Debug logs are written to the logger given by
WithLogger.

# Usage
None of the maps are safe for concurrent use. Keys that are nil pointers, interfaces, maps, slices, funcs, or channels
are rejected with Go_Trees.NilKeyError.
*/
package Maps
