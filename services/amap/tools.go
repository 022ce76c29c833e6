// File: services/amap/tools.go
package amap

import (
	"context"
	"encoding/json"
	"fmt"

	"tripflow/models"
	"tripflow/services/planner"
)

// Tools binds the Amap operations as agent tools. Tool names and argument
// shapes follow the Amap map-server conventions the agents are prompted with.
func Tools(c *Client) []planner.Tool {
	return []planner.Tool{
		{
			Def: models.ToolDef{
				Name:        "maps_text_search",
				Description: "Search points of interest by keyword within a city.",
				Properties: map[string]models.ToolProp{
					"keywords":  {Type: "string", Description: "Search keywords."},
					"city":      {Type: "string", Description: "City to search in."},
					"citylimit": {Type: "boolean", Description: "Restrict results to the city."},
				},
				Required: []string{"keywords", "city"},
			},
			Call: func(ctx context.Context, args string) (string, error) {
				var in struct {
					Keywords  string `json:"keywords"`
					City      string `json:"city"`
					Citylimit *bool  `json:"citylimit"`
				}
				if err := decodeArgs(args, &in); err != nil {
					return "", err
				}
				citylimit := true
				if in.Citylimit != nil {
					citylimit = *in.Citylimit
				}
				return c.TextSearch(ctx, in.Keywords, in.City, citylimit)
			},
		},
		{
			Def: models.ToolDef{
				Name:        "maps_weather",
				Description: "Fetch the weather forecast for a city.",
				Properties: map[string]models.ToolProp{
					"city": {Type: "string", Description: "City name."},
				},
				Required: []string{"city"},
			},
			Call: func(ctx context.Context, args string) (string, error) {
				var in struct {
					City string `json:"city"`
				}
				if err := decodeArgs(args, &in); err != nil {
					return "", err
				}
				return c.Weather(ctx, in.City)
			},
		},
		directionTool(c, "maps_direction_walking_by_address", RouteWalking,
			"Plan a walking route between two addresses."),
		directionTool(c, "maps_direction_driving_by_address", RouteDriving,
			"Plan a driving route between two addresses."),
		directionTool(c, "maps_direction_transit_integrated_by_address", RouteTransit,
			"Plan a public transit route between two addresses."),
		{
			Def: models.ToolDef{
				Name:        "maps_geo",
				Description: "Convert an address into coordinates.",
				Properties: map[string]models.ToolProp{
					"address": {Type: "string", Description: "Address to geocode."},
					"city":    {Type: "string", Description: "City for disambiguation."},
				},
				Required: []string{"address"},
			},
			Call: func(ctx context.Context, args string) (string, error) {
				var in struct {
					Address string `json:"address"`
					City    string `json:"city"`
				}
				if err := decodeArgs(args, &in); err != nil {
					return "", err
				}
				return c.Geocode(ctx, in.Address, in.City)
			},
		},
		{
			Def: models.ToolDef{
				Name:        "maps_search_detail",
				Description: "Fetch the detail record of a point of interest by ID.",
				Properties: map[string]models.ToolProp{
					"id": {Type: "string", Description: "POI ID from a search result."},
				},
				Required: []string{"id"},
			},
			Call: func(ctx context.Context, args string) (string, error) {
				var in struct {
					ID string `json:"id"`
				}
				if err := decodeArgs(args, &in); err != nil {
					return "", err
				}
				return c.POIDetail(ctx, in.ID)
			},
		},
	}
}

func directionTool(c *Client, name, mode, description string) planner.Tool {
	return planner.Tool{
		Def: models.ToolDef{
			Name:        name,
			Description: description,
			Properties: map[string]models.ToolProp{
				"origin_address":      {Type: "string", Description: "Start address."},
				"destination_address": {Type: "string", Description: "End address."},
				"origin_city":         {Type: "string", Description: "City of the start address."},
				"destination_city":    {Type: "string", Description: "City of the end address."},
			},
			Required: []string{"origin_address", "destination_address"},
		},
		Call: func(ctx context.Context, args string) (string, error) {
			var in struct {
				OriginAddress      string `json:"origin_address"`
				DestinationAddress string `json:"destination_address"`
				OriginCity         string `json:"origin_city"`
				DestinationCity    string `json:"destination_city"`
			}
			if err := decodeArgs(args, &in); err != nil {
				return "", err
			}
			return c.DirectionByAddress(ctx, in.OriginAddress, in.DestinationAddress, in.OriginCity, in.DestinationCity, mode)
		},
	}
}

func decodeArgs(args string, out any) error {
	if args == "" {
		args = "{}"
	}
	if err := json.Unmarshal([]byte(args), out); err != nil {
		return fmt.Errorf("amap: invalid tool arguments: %w", err)
	}
	return nil
}
