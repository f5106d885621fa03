package domain

type Point struct {
	Lat float64 `json:"lat" db:"lat"`
	Lon float64 `json:"lon" db:"lon"`
}

// DocumentPage - страница документов коллекции вместе с общим количеством
type DocumentPage struct {
	Documents  []Document
	TotalCount int64
}

// NamedObject - пара {id, name} для выпадающих списков back-office
type NamedObject struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
