// Package llrb implement an ordered symbol table using a self-balancing
// binary-search-tree, called, LLRB (Left Leaning Red Black).
//
//   - Keys are generic, ordered by an api.Compare function.
//   - Each key shall be unique within the index, Put on an existing
//     key replace its value.
//   - Every node track the size of its subtree, Select and Rank are
//     answered in logarithmic time.
//   - Memory capacity is unlimited, unless configured via "memcapacity"
//     settings.
//   - []byte keys are copied into the tree on insert.
//   - Readers run concurrently, writers are serialized.
//
// Nil keys, for key types that admit nil, are rejected.
package llrb
