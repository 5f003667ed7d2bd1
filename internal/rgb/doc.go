// internal/rgb/doc.go

/*
Package rgb holds the colour arithmetic of rgbmix: a validated RGB value
type, the parser for textual triples such as `255,0,0` or `255 0 0`, the
truncating linear mixer, and the output formatters.

Every function in this package is pure. A Color that leaves Parse or Mix
always carries integer channels in the range 0-255.
*/
package rgb
