// Package ordtree implement ordered symbol tables for {key,value} entries
// and the necessary tools and libraries.
//
// api:
//
// Interface definitions to access ordtree datastructures, along with
// comparators and error values shared by all indexes.
//
// dict:
//
// Reference index built on golang map, keys are sorted on demand. Used
// to cross check llrb, not for production.
//
// lib:
//
// Convinience functions that can be used by other packages. Package shall
// not import packages other than golang's standard packages.
//
// llrb:
//
// A version of Left Leaning Red Black tree for sorting and retrieving
// {key,value} entries, with order statistics. Index resides entirely in
// memory.
//
// tools/llrb:
//
// Command line tool to load and cross check llrb index.
package ordtree
