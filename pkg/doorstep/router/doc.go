// Package router provides screen navigation over a static route table.
//
// Routes are registered once, before Start, as typed identifiers with a name and a
// mount function. Every navigate pushes a freshly mounted instance onto the history
// stack; GoBack pops it. Instances below the top stay mounted, so returning to a
// screen shows it as it was left.
//
// # Basic Usage
//
//	const (
//	    RouteHome router.Route = iota
//	    RouteDetail
//	)
//
//	r := router.New[*Page]()
//
//	_ = r.Register(router.Definition[*Page]{
//	    Route: RouteHome,
//	    Name:  "Home",
//	    Mount: func(nav router.Navigator) *Page { return newHome(nav) },
//	})
//	_ = r.Register(router.Definition[*Page]{
//	    Route:       RouteDetail,
//	    Name:        "Detail",
//	    Title:       "Detail",
//	    HeaderShown: true,
//	    Mount:       func(nav router.Navigator) *Page { return newDetail(nav) },
//	})
//
//	_ = r.Start(RouteHome)
//	_ = r.Navigate("Detail") // history: Home, Detail
//	r.GoBack()               // history: Home
//
// # Invalid Targets
//
// Navigate returns ErrInvalidRouteTarget for a name that is not in the table and
// leaves the history untouched. The Navigator passed to mounted screens swallows
// that error, so a screen can never break navigation by naming a bad route.
//
// # History Invariant
//
// After Start the history is never empty and its last element is always the
// current route. GoBack on the initial route is a no-op.
package router
