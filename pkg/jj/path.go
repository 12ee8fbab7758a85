package jj

import "strconv"

// RootPath is the path of a wrapper built directly from a document.
const RootPath = "<root>"

// nilMarker records a hop through a node that was not the expected container.
const nilMarker = "<nil>"

func keyPath(p, key string) string {
	return p + "." + key
}

func indexPath(p string, index int) string {
	return p + "[" + strconv.Itoa(index) + "]"
}

func missingKeyPath(p, key string) string {
	return keyPath(p+nilMarker, key)
}

func missingIndexPath(p string, index int) string {
	return indexPath(p+nilMarker, index)
}
