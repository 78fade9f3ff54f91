package mcp_test

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/safecity/crimelens/internal/contract"
	mcp_internal "github.com/safecity/crimelens/internal/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMCPServerHandlers_ValidationErrors(t *testing.T) {
	baseCfg := &contract.Config{
		LookbackMonths: contract.DefaultLookbackMonths,
		ResultLimit:    contract.DefaultResultLimit,
		Waypoints:      contract.DefaultWaypoints,
		RadiusDeg:      contract.DefaultRadiusDeg,
		Displacement:   contract.DefaultDisplacement,
		SpeedKmh:       contract.DefaultSpeedKmh,
	}

	// Create a dummy manager, though we shouldn't hit it because we test validation errors
	var mgr contract.StoreManager
	s := mcp_internal.NewMCPServer(baseCfg, mgr)

	ctx := context.Background()

	t.Run("plan_safe_route missing start", func(t *testing.T) {
		tool := s.GetTool("plan_safe_route")
		require.NotNil(t, tool, "Tool plan_safe_route should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "plan_safe_route",
				Arguments: map[string]any{
					"start": "", // Missing required
					"end":   "23.79,90.40",
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "invalid start")
	})

	t.Run("plan_safe_route malformed end", func(t *testing.T) {
		tool := s.GetTool("plan_safe_route")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "plan_safe_route",
				Arguments: map[string]any{
					"start": "23.81,90.41",
					"end":   "not-a-coordinate", // Invalid
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "invalid end")
	})
}
