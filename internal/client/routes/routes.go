// Package routes names the client's pages and maps a page path to one.
package routes

import (
	"path"
	"strings"
)

// Page is the file name of a page, e.g. "login.html".
type Page string

const (
	None     Page = ""
	Index    Page = "index.html"
	Login    Page = "login.html"
	Register Page = "register.html"
	UserArea Page = "user-area.html"
	Profile  Page = "profile.html"
)

// All lists the navigable pages.
var All = []Page{Index, Login, Register, UserArea, Profile}

// Resolve picks the page for a path such as "/app/login.html?next=1" by
// its final segment. The empty path and "/" are the index page. Anything
// unrecognised resolves to None.
func Resolve(p string) Page {
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	p = strings.TrimSpace(p)
	if p == "" || strings.HasSuffix(p, "/") {
		return Index
	}

	name := path.Base(p)
	if !strings.HasSuffix(name, ".html") {
		name += ".html"
	}
	for _, pg := range All {
		if string(pg) == name {
			return pg
		}
	}
	return None
}

// RequiresSession reports whether the page is only useful when logged in.
func (p Page) RequiresSession() bool {
	return p == UserArea || p == Profile
}

func (p Page) String() string {
	if p == None {
		return "(none)"
	}
	return string(p)
}
