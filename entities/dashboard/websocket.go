package dashboard

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// Event notifie le dashboard qu'une collection a changé et qu'il doit se
// rafraîchir. Entity vaut "prospects" ou "clients".
type Event struct {
	Action string `json:"action"`
	Entity string `json:"entity"`
	ID     string `json:"id"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

var wsClients = make(map[*websocket.Conn]bool)
var wsMutex sync.Mutex

// Broadcast envoie l'événement à tous les dashboards connectés. Une écriture
// en échec ferme et retire la connexion.
func Broadcast(event Event) {
	wsMutex.Lock()
	defer wsMutex.Unlock()
	for client := range wsClients {
		err := client.WriteJSON(event)
		if err != nil {
			client.Close()
			delete(wsClients, client)
		}
	}
}

func WebSocketHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "Impossible de passer la connexion en websocket", http.StatusInternalServerError)
		return
	}
	defer conn.Close()

	wsMutex.Lock()
	wsClients[conn] = true
	wsMutex.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	wsMutex.Lock()
	delete(wsClients, conn)
	wsMutex.Unlock()
}
