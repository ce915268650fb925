// Package notify wakes up idle sync clients after a push.
//
// Clients keep a websocket open on the poke endpoint. After a push the
// server sends a small "poke" frame to every socket of the pushing user and
// the clients respond by pulling. Pokes carry no data and may be dropped.
package notify
