package handlers

// HandlerBundle groups the constructed handlers for route registration.
type HandlerBundle struct {
	Trip *TripHandler
	Geo  *GeoHandler
}
