package entities

// Person is a node of the social network.
// Friends are held as names, which are keys into the owning network,
// so a person never owns another person.
type Person struct {
	name    string
	friends []string
	index   map[string]struct{}
}

// NewPerson creates a person with no friends. The name is not validated.
func NewPerson(name string) *Person {
	return &Person{
		name:    name,
		friends: []string{},
		index:   make(map[string]struct{}),
	}
}

// Name returns the person's unique name
func (p *Person) Name() string {
	return p.name
}

// AddFriend records name as a friend if it is not one already.
// It reports whether the friend set changed. Symmetry is the caller's concern.
func (p *Person) AddFriend(name string) bool {
	if _, exists := p.index[name]; exists {
		return false
	}
	p.index[name] = struct{}{}
	p.friends = append(p.friends, name)
	return true
}

// IsFriendsWith checks whether name is in the friend set
func (p *Person) IsFriendsWith(name string) bool {
	_, exists := p.index[name]
	return exists
}

// Friends returns friend names in the order they were added
func (p *Person) Friends() []string {
	// Return a copy to maintain encapsulation
	friends := make([]string, len(p.friends))
	copy(friends, p.friends)
	return friends
}

// FriendCount returns the size of the friend set
func (p *Person) FriendCount() int {
	return len(p.friends)
}
