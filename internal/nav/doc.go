// Package nav implements the interaction controller behind the site
// navigation bar: the viewport classifier, the menu state machine, the
// keyboard router and the focus containment guard.
//
// The package is headless. Width, scroll, key and focus signals are fed in
// as events, and focus moves come back out as element ids for the client to
// apply. Nothing here touches a real DOM.
package nav
