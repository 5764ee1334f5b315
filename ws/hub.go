package ws

// Hub menyimpan koneksi client, menerima pesan dari controller, dan
// menyiarkannya ke seluruh client yang terhubung. Dipakai untuk mendorong
// perubahan antrian pendaftaran ke layar tunggu.

import (
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

var HubInstance = NewHub()

func init() {
	go HubInstance.Run()
}

// Client mewakili satu koneksi WebSocket.
type Client struct {
	Conn *websocket.Conn
	Send chan []byte
}

// Hub mengelola semua koneksi client.
type Hub struct {
	Clients    map[*Client]bool
	Broadcast  chan []byte
	Register   chan *Client
	Unregister chan *Client
}

func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[*Client]bool),
		Broadcast:  make(chan []byte),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.Clients[client] = true
			log.Debug().Int("clients", len(h.Clients)).Msg("Client websocket terdaftar")
		case client := <-h.Unregister:
			if _, ok := h.Clients[client]; ok {
				delete(h.Clients, client)
				close(client.Send)
				log.Debug().Int("clients", len(h.Clients)).Msg("Client websocket terputus")
			}
		case message := <-h.Broadcast:
			for client := range h.Clients {
				select {
				case client.Send <- message:
				default:
					// Client yang buffernya penuh dianggap mati.
					close(client.Send)
					delete(h.Clients, client)
				}
			}
		}
	}
}
