/*
Package gallery keeps rendered figures in a SQLite database so they can be
served together as one page. A Store is an animation.Sink: every displayed
fragment becomes a row keyed by its file id, and because file ids are unique
within the gallery, two figures on the same page can never share hover
handler ids.
*/
package gallery
