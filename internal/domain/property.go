package domain

import (
	"errors"
	"time"
)

var ErrPropertyNotFound = errors.New("property not found")

type PropertyType string

const (
	TypeApartment PropertyType = "apartment"
	TypePenthouse PropertyType = "penthouse"
	TypeHouse     PropertyType = "house"
)

type Address struct {
	Street       string  `json:"street"`
	Number       string  `json:"number"`
	City         string  `json:"city"`
	Neighborhood string  `json:"neighborhood"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
}

// Property is immutable after catalog generation. Detail-only fields
// (amenities, prediction, neighborhood stats) live on PropertyDetail and are
// synthesized fresh on every read.
type Property struct {
	ID              string       `json:"id"`
	Title           string       `json:"title"`
	PropertyType    PropertyType `json:"propertyType"`
	Address         Address      `json:"address"`
	Price           int64        `json:"price"`
	PricePerSqm     int64        `json:"pricePerSqm"`
	Rooms           float64      `json:"rooms"`
	SizeSqm         int64        `json:"sizeSqm"`
	Floor           int          `json:"floor"`
	TotalFloors     int          `json:"totalFloors"`
	RQScore         int          `json:"rqScore"`
	RQScoreLabel    string       `json:"rqScoreLabel"`
	PrimaryImageURL string       `json:"primaryImageUrl"`
	LastUpdatedAt   string       `json:"lastUpdatedAt"`
	Features        []string     `json:"features"`
}

type Media struct {
	Images []string `json:"images"`
	Videos []string `json:"videos"`
}

type Amenities struct {
	Mamad          bool `json:"mamad"`
	Elevator       bool `json:"elevator"`
	ParkingSpots   int  `json:"parkingSpots"`
	Storage        bool `json:"storage"`
	BalconySizeSqm int  `json:"balconySizeSqm"`
	Renovated      bool `json:"renovated"`
	Accessible     bool `json:"accessible"`
	AC             bool `json:"ac"`
}

type Prediction struct {
	Forecast12Months    int64   `json:"forecast12Months"`
	Forecast24Months    int64   `json:"forecast24Months"`
	Forecast60Months    int64   `json:"forecast60Months"`
	ExpectedIncreasePct float64 `json:"expectedIncreasePct"`
	AnnualROIPct        float64 `json:"annualRoiPct"`
	ConfidencePct       int     `json:"confidencePct"`
}

type NeighborhoodAmenities struct {
	Schools         int `json:"schools"`
	Parks           int `json:"parks"`
	TransitLines    int `json:"transitLines"`
	ShoppingCenters int `json:"shoppingCenters"`
}

type NeighborhoodStats struct {
	Name            string                `json:"name"`
	AvgPricePerSqm  int64                 `json:"avgPricePerSqm"`
	AvgRQScore      int                   `json:"avgRqScore"`
	PropertiesCount int                   `json:"propertiesCount"`
	Amenities       NeighborhoodAmenities `json:"amenities"`
}

type Reason struct {
	Label     string `json:"label"`
	Sentiment string `json:"sentiment"`
}

type PropertyDetail struct {
	Property
	Description  string            `json:"description"`
	Media        Media             `json:"media"`
	Amenities    Amenities         `json:"amenities"`
	Prediction   Prediction        `json:"prediction"`
	Neighborhood NeighborhoodStats `json:"neighborhood"`
	Reasons      []Reason          `json:"reasons"`
}

type SavedMeta struct {
	SavedAt       time.Time `json:"savedAt"`
	AlertsEnabled bool      `json:"alertsEnabled"`
	LastChange    *string   `json:"lastChange"`
	DaysSaved     int       `json:"daysSaved"`
}

// SavedProperty is a view-only bookmark: both the list and save endpoints
// synthesize it per call, there is no shared saved-set state.
type SavedProperty struct {
	ID       string    `json:"id"`
	Property Property  `json:"property"`
	Meta     SavedMeta `json:"meta"`
}

// PageMeta is the pagination envelope shared by search and notifications.
type PageMeta struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
	TotalItems int `json:"totalItems"`
}
