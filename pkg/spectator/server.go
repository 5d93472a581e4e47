// Package spectator streams the events of a game to WebSocket clients.
// Spectators can not send commands.
package spectator

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"codeberg.org/tslocum/ludo"
	"github.com/gorilla/mux"
)

type Server struct {
	clients     []*client
	clientsLock sync.Mutex

	board     []byte
	boardLock sync.RWMutex

	verbose bool
}

func NewServer(verbose bool) *Server {
	return &Server{
		verbose: verbose,
	}
}

func (s *Server) Handler() http.Handler {
	m := mux.NewRouter()
	m.HandleFunc("/board", s.handleBoard).Methods(http.MethodGet)
	m.HandleFunc("/", s.handleWebSocket)
	return m
}

// Listen serves spectators on the specified address. It does not return.
func (s *Server) Listen(address string) {
	log.Printf("Listening for spectators on %s...", address)

	err := http.ListenAndServe(address, s.Handler())
	log.Fatalf("failed to listen on %s: %s", address, err)
}

// Publish sends an event to all spectators. Board events are also stored
// and sent to spectators as they connect.
func (s *Server) Publish(e interface{}) {
	buf, err := json.Marshal(e)
	if err != nil {
		log.Fatalf("failed to marshal %+v: %s", e, err)
	}

	if _, ok := e.(*ludo.EventBoard); ok {
		s.boardLock.Lock()
		s.board = buf
		s.boardLock.Unlock()
	}

	s.clientsLock.Lock()
	defer s.clientsLock.Unlock()

	i := 0
	for _, c := range s.clients {
		if !c.Write(buf) {
			continue
		}
		s.clients[i] = c
		i++
	}
	for j := i; j < len(s.clients); j++ {
		s.clients[j] = nil
	}
	s.clients = s.clients[:i]
}

func (s *Server) cachedBoard() []byte {
	s.boardLock.RLock()
	defer s.boardLock.RUnlock()
	return s.board
}

func (s *Server) addClient(c *client) {
	s.clientsLock.Lock()
	defer s.clientsLock.Unlock()

	s.clients = append(s.clients, c)
}

func (s *Server) removeClient(c *client) {
	s.clientsLock.Lock()
	defer s.clientsLock.Unlock()

	for i, sc := range s.clients {
		if sc == c {
			s.clients = append(s.clients[:i], s.clients[i+1:]...)
			return
		}
	}
}

func (s *Server) handleBoard(w http.ResponseWriter, r *http.Request) {
	board := s.cachedBoard()
	if board == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(board)
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	c := newClient(w, r, s.verbose)
	if c == nil {
		return
	}

	s.addClient(c)
	log.Printf("Spectator %s connected", c.address)

	if board := s.cachedBoard(); board != nil {
		c.Write(board)
	}
	c.HandleReadWrite()

	s.removeClient(c)
	log.Printf("Spectator %s disconnected", c.address)
}
