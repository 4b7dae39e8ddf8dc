package gallery

// Package gallery implements a directory-backed media library. Assets are
// image files copied into the library root under unique names; albums are
// sub-directories looked up by title, so creating an album twice reuses it.
