// Package markdown turns raw article files into parsed documents: it splits
// the metadata block from the body, renders the body to HTML with goldmark
// and computes the reading time. Loader and Service add fs.FS discovery so
// the content store can resolve documents by directory and slug.
package markdown
