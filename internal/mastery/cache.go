package mastery

import "sync"

// progressCache holds recently written records, keyed by user and then by
// content or path id. It is populated write-through inside the tracker's
// per-key critical sections and only ever holds what was last persisted,
// so a hit can be served without touching storage. Reads never populate
// it: a read racing a write could otherwise re-insert the pre-write value
// after the writer replaced it.
type progressCache struct {
	mu      sync.RWMutex
	users   map[string]*UserProgress
	content map[string]map[string]*ContentMastery
	paths   map[string]map[string]*PathProgressDetails
}

func newProgressCache() *progressCache {
	return &progressCache{
		users:   make(map[string]*UserProgress),
		content: make(map[string]map[string]*ContentMastery),
		paths:   make(map[string]map[string]*PathProgressDetails),
	}
}

func (c *progressCache) userProgress(userID string) (*UserProgress, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	up, ok := c.users[userID]
	return up.Clone(), ok
}

func (c *progressCache) setUserProgress(up *UserProgress) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.users[up.UserID] = up.Clone()
}

func (c *progressCache) contentMastery(userID, contentID string) (*ContentMastery, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	cm, ok := c.content[userID][contentID]
	return cm.Clone(), ok
}

func (c *progressCache) setContentMastery(userID string, cm *ContentMastery) {
	c.mu.Lock()
	defer c.mu.Unlock()
	byContent, ok := c.content[userID]
	if !ok {
		byContent = make(map[string]*ContentMastery)
		c.content[userID] = byContent
	}
	byContent[cm.ContentID] = cm.Clone()
}

func (c *progressCache) pathProgress(userID, pathID string) (*PathProgressDetails, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	pp, ok := c.paths[userID][pathID]
	return pp.Clone(), ok
}

func (c *progressCache) setPathProgress(userID string, pp *PathProgressDetails) {
	c.mu.Lock()
	defer c.mu.Unlock()
	byPath, ok := c.paths[userID]
	if !ok {
		byPath = make(map[string]*PathProgressDetails)
		c.paths[userID] = byPath
	}
	byPath[pp.PathID] = pp.Clone()
}

// invalidateUser drops every cached record for the user.
func (c *progressCache) invalidateUser(userID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.users, userID)
	delete(c.content, userID)
	delete(c.paths, userID)
}
