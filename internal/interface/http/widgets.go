package http

import "net/url"

const menuParam = "menu"

// MobileMenu is the show/hide state of the navigation on small screens,
// carried in the page URL.
type MobileMenu struct {
	Open bool
}

func ParseMobileMenu(u *url.URL) MobileMenu {
	return MobileMenu{Open: u.Query().Get(menuParam) == "open"}
}

func (m MobileMenu) Toggle() MobileMenu {
	return MobileMenu{Open: !m.Open}
}

func (m MobileMenu) Icon() string {
	if m.Open {
		return "fa-times"
	}
	return "fa-bars"
}

func (m MobileMenu) NavClass() string {
	if m.Open {
		return "main-nav active"
	}
	return "main-nav"
}

// ToggleHref is the current URL with the menu state flipped.
func (m MobileMenu) ToggleHref(u *url.URL) string {
	q := u.Query()
	if m.Open {
		q.Del(menuParam)
	} else {
		q.Set(menuParam, "open")
	}
	next := url.URL{Path: u.Path, RawQuery: q.Encode()}
	if next.Path == "" {
		next.Path = "/"
	}
	return next.String()
}
