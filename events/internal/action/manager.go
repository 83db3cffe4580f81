package action

import (
	"container/list"
	"sync"
)

// Manager holds the actions deferred while a dispatch is running
type Manager struct {
	mtx     sync.Mutex
	actions list.List
}

// Init this class
func (me *Manager) Init() *Manager {
	me.actions.Init()
	return me
}

// Append action to the list
func (me *Manager) Append(a *Action) {
	me.mtx.Lock()
	defer me.mtx.Unlock()

	me.actions.PushBack(a)
}

// ForEach drains the list, calling the func for each of the actions in order
func (me *Manager) ForEach(cb func(*Action)) {
	me.mtx.Lock()
	defer me.mtx.Unlock()

	for e := me.actions.Front(); e != nil; e = me.actions.Front() {
		a := e.Value.(*Action)
		cb(a)

		me.actions.Remove(e)
	}
}
