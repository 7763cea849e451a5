package checkout

// Route names of the mobile app.
const (
	RouteMainBottom   = "MainBottom"
	RouteOrderCreated = "OrderCreated"
	RouteOrderDetails = "OrderDetails"
	ScreenDashboard   = "Dashboard"
)

// Route is a named screen with its parameters.
type Route struct {
	Name   string
	Params map[string]interface{}
}

// Navigator replaces the navigation stack with routes, focusing routes[index].
type Navigator interface {
	Reset(routes []Route, index int)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(routes []Route, index int)

func (f NavigatorFunc) Reset(routes []Route, index int) { f(routes, index) }

// resetOnto puts target on top of the dashboard, so "back" leads home.
func resetOnto(nav Navigator, target string, orderID uint) {
	if nav == nil {
		return
	}
	nav.Reset([]Route{
		{Name: RouteMainBottom, Params: map[string]interface{}{"screen": ScreenDashboard}},
		{Name: target, Params: map[string]interface{}{"id": orderID}},
	}, 1)
}

// OrderID extracts the "id" parameter of a route.
func (r Route) OrderID() (uint, bool) {
	id, ok := r.Params["id"].(uint)
	return id, ok
}
