/*
Package animation assembles self-contained HTML fragments for interactive
array-visualization widgets. A fragment is made of a boxed grid with index
headers, a list of labeled 1D series and a hover script that highlights
cells while the pointer rests on them, all preceded by a static stylesheet.

The visual grammar is fixed: every value is a boxed element and the hover
palette comes from Config. Stylesheet and hover-handler script are loaded
once as Assets and passed to the Assembler, which forwards finished
fragments to an injected Sink.
*/
package animation
