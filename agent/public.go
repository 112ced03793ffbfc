package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/bluez/tripwise"
	"github.com/bluez/tripwise/renderer"
)

const model = "gemini-2.5-pro"

// TripSource loads the current trip list. The assistant reads trips through
// it on every question, so answers always reflect the saved state.
type TripSource func() ([]*tripwise.Trip, error)

// newFacilitator creates the expert owning the conversation.
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skills that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is planning or living a trip. He will ask about his itinerary, his spending,
			his packing, or the destination itself. He assumes you already know his trips,
			so check with the planner expert first to understand what they are.

			Devise a plan of questions to ask each expert and come up with the best response
			to the user's request.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewConcierge is the destination expert. It grounds answers about places,
// weather, local customs or current events with Google Search.
func NewConcierge() *Expert {
	return &Expert{
		Name: "Concierge",
		Description: `This is the Concierge, an expert on travel destinations.
		He knows about places, sights, restaurants, local transportation, weather and customs,
		and can search the web for current information.
		Ask the Concierge whenever you need recent or grounding information about a destination.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert travel concierge. You can find anything about destinations:
			sights, opening hours, restaurants, local transportation, weather and customs.
			You leverage Google Search to ground your assertions in solid truth.
			You can get the latest news too, and you know how to relate them to the user's trip.
				`}}},
		},
	}
}

// NewPlannerExpert is the expert reading the user's trips. It answers
// through the same reports the CLI prints, loaded via source.
func NewPlannerExpert(source TripSource) *Expert {
	lib := []Function{tripsFunc(source), itineraryFunc(source), budgetFunc(source)}

	return &Expert{
		Name: "Planner",
		Description: `This is the Planner. He has read access to the user's saved trips:
		the trip list, each trip's day-by-day itinerary, and each trip's budget with all expenses.
		Ask the Planner anything about what the user has planned or spent.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are in charge of the user's trip plans.
				You know how to use the Tools to read the user's trips, itineraries and budgets.
				You are part of a team of experts; yours is everything the user has planned and spent.
				They might ask approximative questions, pardon their language and figure out what they meant.

				Use the available tools to get information about the user's trips:
				  - the list of trips with their dates
				  - the day-by-day itinerary of one trip
				  - the budget and expenses of one trip
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function.
type Func struct {
	Decl *genai.FunctionDeclaration
	Fn   func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Fn(ctx, id, args)
}

func tripsFunc(source TripSource) Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "Trips",
			Description: `Trips lists all the user's saved trips with their destination, dates and total spending.`,
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown table of all trips, upcoming and past.",
			},
		},
		Fn: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			trips, err := source()
			if err != nil {
				return errorResponse(id, "Trips", err)
			}
			return outputResponse(id, "Trips", renderer.TripsMarkdown(trips))
		},
	}
}

func itineraryFunc(source TripSource) Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Itinerary",
			Description: `Itinerary returns the full day-by-day plan of one trip:
			each day's title, date, transportation, activities and checklist.`,
			Parameters: tripNameParameter(),
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown itinerary report for the trip.",
			},
		},
		Fn: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			trip, err := findTrip(source, args)
			if err != nil {
				return errorResponse(id, "Itinerary", err)
			}
			return outputResponse(id, "Itinerary", renderer.ItineraryMarkdown(renderer.NewTripView(trip)))
		},
	}
}

func budgetFunc(source TripSource) Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Budget",
			Description: `Budget returns one trip's budget report: totals, per-day spending,
			every expense with its currency and converted amount, and the category breakdown.`,
			Parameters: tripNameParameter(),
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown budget report for the trip.",
			},
		},
		Fn: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			trip, err := findTrip(source, args)
			if err != nil {
				return errorResponse(id, "Budget", err)
			}
			return outputResponse(id, "Budget", renderer.BudgetMarkdown(renderer.NewBudgetView(trip)))
		},
	}
}

func tripNameParameter() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"trip": {
				Type:        genai.TypeString,
				Description: "The exact name of the trip, as returned by the Trips function.",
			},
		},
		Required: []string{"trip"},
	}
}

func findTrip(source TripSource, args map[string]any) (*tripwise.Trip, error) {
	name, ok := args["trip"].(string)
	if !ok {
		return nil, fmt.Errorf("argument 'trip' is not a string as expected but %T", args["trip"])
	}
	trips, err := source()
	if err != nil {
		return nil, err
	}
	for _, t := range trips {
		if t.Name == name {
			return t, nil
		}
	}
	return nil, fmt.Errorf("no trip named %q; call Trips to list the known trips", name)
}

func errorResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:       id,
		Name:     name,
		Response: map[string]any{"error": err.Error()},
	}
}

func outputResponse(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:       id,
		Name:     name,
		Response: map[string]any{"output": output},
	}
}
