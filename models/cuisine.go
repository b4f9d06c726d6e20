package models

type CuisineProduct struct {
	Title    string `firestore:"title" json:"title"`
	Desc     string `firestore:"desc" json:"desc"`
	ImageURL string `firestore:"imageUrl" json:"imageUrl"`
}

type Cuisine struct {
	ID           string           `firestore:"-" json:"id"`
	Heading      string           `firestore:"heading" json:"heading"`
	LowerHeading string           `firestore:"lowerHeading" json:"lowerHeading"`
	SubHeading   string           `firestore:"subHeading" json:"subHeading"`
	Desc         string           `firestore:"desc" json:"desc"`
	About        string           `firestore:"about" json:"about"`
	Image        string           `firestore:"image" json:"image"`
	Banner       string           `firestore:"banner" json:"banner"`
	Products     []CuisineProduct `firestore:"products" json:"products"`
}
