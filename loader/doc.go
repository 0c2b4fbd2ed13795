// Package loader reads graphs in the line-oriented adjacency text format:
//
//	<node> <neighbor> <neighbor> ...
//
// one line per node, tokens separated by whitespace. Trailing blanks and
// empty lines are ignored. Graphs can be read from any io.Reader, a local
// file, or an http(s) URL.
//
// By default the input is taken as an undirected graph and must already be
// symmetric; WithSymmetrize mirrors one-sided entries instead, and
// WithDirected keeps every line as a list of out-edges.
package loader
