package storage

import "time"

// AppState is the whole persisted aggregate. It is saved and loaded as a
// single JSON document; there is no per-entity storage granularity.
type AppState struct {
	UserData    UserData    `json:"userData"`
	Tasks       []Task      `json:"tasks"`
	ShopItems   []ShopItem  `json:"shopItems"`
	MonthlyData []MonthData `json:"monthlyData"`
}

type UserData struct {
	TotalPoints     int           `json:"totalPoints"`
	AvailablePoints int           `json:"availablePoints"`
	CompletedTasks  int           `json:"completedTasks"`
	CurrentStreak   int           `json:"currentStreak"`
	LongestStreak   int           `json:"longestStreak"`
	PurchasedItems  []string      `json:"purchasedItems"`
	Achievements    []Achievement `json:"achievements"`
	JoinedDate      time.Time     `json:"joinedDate"`
}

type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Month       int        `json:"month"` // 1-12
	Year        int        `json:"year"`
	ImageURL    *string    `json:"imageUrl,omitempty"`
	Points      int        `json:"points"`
	Completed   bool       `json:"completed"`
	Category    string     `json:"category"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type ShopItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	Category    string `json:"category"`
	ImageURL    string `json:"imageUrl"`
	Purchased   bool   `json:"purchased"`
	Unlocked    bool   `json:"unlocked"`
}

// Achievement rows are carried in the document for forward compatibility;
// earned badges are derived by the engine, not persisted here.
type Achievement struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	UnlockedAt  time.Time `json:"unlockedAt"`
	Points      int       `json:"points"`
}

// MonthData is reserved in the document shape. The engine never fills it;
// it decodes and round-trips as an empty collection.
type MonthData struct {
	Month             int     `json:"month"`
	Year              int     `json:"year"`
	Theme             *string `json:"theme,omitempty"`
	LessonTitle       *string `json:"lessonTitle,omitempty"`
	LessonDescription *string `json:"lessonDescription,omitempty"`
	Tasks             []Task  `json:"tasks"`
}

// Clone returns a deep copy of the state so callers can mutate freely
// without aliasing slices held elsewhere.
func (s *AppState) Clone() *AppState {
	out := &AppState{
		UserData:    s.UserData,
		Tasks:       append([]Task(nil), s.Tasks...),
		ShopItems:   append([]ShopItem(nil), s.ShopItems...),
		MonthlyData: append([]MonthData(nil), s.MonthlyData...),
	}
	out.UserData.PurchasedItems = append([]string(nil), s.UserData.PurchasedItems...)
	out.UserData.Achievements = append([]Achievement(nil), s.UserData.Achievements...)
	return out
}

// FindTask returns a pointer into the state's task slice, or nil.
func (s *AppState) FindTask(id string) *Task {
	for i := range s.Tasks {
		if s.Tasks[i].ID == id {
			return &s.Tasks[i]
		}
	}
	return nil
}

// FindShopItem returns a pointer into the state's catalog slice, or nil.
func (s *AppState) FindShopItem(id string) *ShopItem {
	for i := range s.ShopItems {
		if s.ShopItems[i].ID == id {
			return &s.ShopItems[i]
		}
	}
	return nil
}
