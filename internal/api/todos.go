package api

import (
	"context"
	"fmt"
	"strconv"
)

// ListTodos returns every todo belonging to the client's owner, in server order.
func (c *Client) ListTodos(ctx context.Context) ([]Todo, error) {
	todos := make([]Todo, 0)
	if err := c.GetWithQuery(ctx, "/todos", c.ownerQuery(), &todos); err != nil {
		return nil, fmt.Errorf("failed to get todos: %w", err)
	}
	return todos, nil
}

// CreateTodo creates a new todo. The server assigns its id.
func (c *Client) CreateTodo(ctx context.Context, req CreateTodoRequest) (*Todo, error) {
	if req.UserID == 0 {
		req.UserID = c.ownerID
	}
	var todo Todo
	if err := c.Post(ctx, "/todos", req, &todo); err != nil {
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}
	return &todo, nil
}

// UpdateTodo sends a partial update for an existing todo.
func (c *Client) UpdateTodo(ctx context.Context, id int, req UpdateTodoRequest) (*Todo, error) {
	if req.IsEmpty() {
		return nil, fmt.Errorf("update for todo %d carries no fields", id)
	}
	var todo Todo
	if err := c.Patch(ctx, "/todos/"+strconv.Itoa(id), req, &todo); err != nil {
		return nil, fmt.Errorf("failed to update todo %d: %w", id, err)
	}
	return &todo, nil
}

// DeleteTodo deletes a todo.
func (c *Client) DeleteTodo(ctx context.Context, id int) error {
	if err := c.Delete(ctx, "/todos/"+strconv.Itoa(id)); err != nil {
		return fmt.Errorf("failed to delete todo %d: %w", id, err)
	}
	return nil
}
