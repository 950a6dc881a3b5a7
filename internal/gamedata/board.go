package gamedata

// NodeDef defines a board location loaded from JSON.
type NodeDef struct {
	ID          string `json:"id"`          // Unique identifier (e.g., "mykonos")
	Name        string `json:"name"`        // Display name (e.g., "Mykonos")
	Description string `json:"description"` // Flavor text shown by the UI
	Kind        string `json:"kind"`        // START, PROPERTY or EVENT
	Price       int    `json:"price"`       // Purchase price, 0 for non-properties
	Rent        int    `json:"rent"`        // Base rent at level 1
}

// RouteDef defines an undirected ferry route between two nodes.
type RouteDef struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// BoardFile represents the structure of board.json.
type BoardFile struct {
	Nodes  []NodeDef  `json:"nodes"`
	Routes []RouteDef `json:"routes"`
}

// LoadBoard loads the node and route definitions from the embedded board.json file.
func LoadBoard() (BoardFile, error) {
	return Load[BoardFile]("board.json")
}
