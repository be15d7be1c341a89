// Package transport implements the websocket client side of the
// NetworkGym gateway protocol: a hello handshake, one measurement
// envelope per control step inbound, one action envelope outbound.
package transport

import (
	"fmt"
	"io"
	"net/url"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/networkgym/netgym-go/netgym"
)

// Envelope message types.
const (
	TypeHello       = "hello"
	TypeMeasurement = "measurement"
	TypeAction      = "action"
	TypeEnd         = "end"
)

// Envelope is the wire frame exchanged with the gateway. Exactly one of
// Measurements/Commands is populated depending on Type.
type Envelope struct {
	Type         string               `json:"type"`
	ClientID     int                  `json:"client_id,omitempty"`
	Session      string               `json:"session,omitempty"`
	Env          string               `json:"env,omitempty"`
	Measurements []netgym.Measurement `json:"measurements,omitempty"`
	Commands     []netgym.Command     `json:"commands,omitempty"`
}

// Client is a netgym.Conn over a websocket session with the gateway.
// Not safe for concurrent use; the per-step contract is strictly
// synchronous anyway.
type Client struct {
	conn    *websocket.Conn
	session uuid.UUID
}

// Dial connects to the gateway at host:port, performs the hello handshake
// and returns a connected client.
func Dial(addr string, clientID int, env string) (*Client, error) {
	u := url.URL{Scheme: "ws", Host: addr, Path: "/session"}
	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("dialing gateway %s: %w", u.String(), err)
	}

	c := &Client{conn: conn, session: uuid.New()}
	hello := Envelope{Type: TypeHello, ClientID: clientID, Session: c.session.String(), Env: env}
	if err := conn.WriteJSON(hello); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sending hello: %w", err)
	}
	logrus.Infof("connected to gateway %s (session %s, env %s)", addr, c.session, env)
	return c, nil
}

// Session returns the session identity sent in the hello handshake.
func (c *Client) Session() uuid.UUID { return c.session }

// Recv implements netgym.Conn: blocks for the next measurement envelope,
// validating every record's id/value alignment. Returns io.EOF when the
// gateway ends the session.
func (c *Client) Recv() (netgym.Batch, error) {
	var env Envelope
	if err := c.conn.ReadJSON(&env); err != nil {
		return nil, fmt.Errorf("reading envelope: %w", err)
	}
	switch env.Type {
	case TypeMeasurement:
		batch := netgym.Batch(env.Measurements)
		if err := batch.Validate(); err != nil {
			return nil, fmt.Errorf("malformed batch: %w", err)
		}
		logrus.Debugf("received batch of %d measurements", len(batch))
		return batch, nil
	case TypeEnd:
		return nil, io.EOF
	default:
		return nil, fmt.Errorf("unexpected envelope type %q", env.Type)
	}
}

// Send implements netgym.Conn: writes the step's command list as one
// action envelope.
func (c *Client) Send(cmds []netgym.Command) error {
	env := Envelope{Type: TypeAction, Session: c.session.String(), Commands: cmds}
	if err := c.conn.WriteJSON(env); err != nil {
		return fmt.Errorf("sending action: %w", err)
	}
	return nil
}

// Close sends a close frame and tears down the connection.
func (c *Client) Close() error {
	// Best effort; the gateway may already be gone.
	_ = c.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	return c.conn.Close()
}
