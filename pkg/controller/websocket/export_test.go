package websocket

// Outbox exposes the client's send buffer.
func (c *Client) Outbox() <-chan []byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.send
}
