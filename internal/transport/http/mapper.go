package http

import (
	"encoding/json"

	"github.com/topichat/topichat-server/internal/core"
	"github.com/topichat/topichat-server/internal/proto"
)

func inboundToCommand(inbound proto.Inbound) (*core.Command, *proto.Error, error) {
	switch inbound.Type {
	case proto.InboundTypeSetName:
		var data proto.SetNameData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, nil, err
		}
		return &core.Command{
			Kind: core.CommandSetName,
			Name: data.Name,
		}, nil, nil
	case proto.InboundTypeJoinChannel:
		var data proto.JoinChannelData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, nil, err
		}
		if data.Channel == "" {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "channel is required"}, nil
		}
		return &core.Command{
			Kind:    core.CommandJoinChannel,
			Channel: data.Channel,
		}, nil, nil
	case proto.InboundTypeJoinRoom:
		var data proto.JoinRoomData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, nil, err
		}
		if data.Channel == "" || data.Room == "" {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "channel and room are required"}, nil
		}
		return &core.Command{
			Kind:    core.CommandJoinRoom,
			Channel: data.Channel,
			Room:    data.Room,
		}, nil, nil
	case proto.InboundTypeMsg:
		var data proto.MsgData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, nil, err
		}
		return &core.Command{
			Kind:    core.CommandSendMessage,
			Channel: data.Channel,
			Room:    data.Room,
			Text:    data.Text,
		}, nil, nil
	case proto.InboundTypeMarkRead:
		var data proto.MarkReadData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, nil, err
		}
		return &core.Command{
			Kind:      core.CommandMarkRead,
			Channel:   data.Channel,
			Room:      data.Room,
			MessageID: data.MessageID,
		}, nil, nil
	default:
		return nil, &proto.Error{Code: "invalid_message", Msg: "unknown message type"}, nil
	}
}

func messageView(view core.MessageView) proto.EventMessage {
	return proto.EventMessage{
		ID:      view.ID,
		Channel: view.Channel,
		Room:    view.Room,
		Sender:  view.Sender,
		Text:    view.Text,
		TS:      view.CreatedAt.Unix(),
		ReadBy:  view.ReadBy,
	}
}

func outboundFromEvent(event *core.Event) proto.Outbound {
	switch event.Kind {
	case core.EventNameSet:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventNameNameSet,
			Data:  proto.EventNameSet{Name: event.Name},
		}
	case core.EventRoomList:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventNameRooms,
			Data: proto.EventRoomList{
				Channel: event.Channel,
				Rooms:   event.Rooms,
			},
		}
	case core.EventHistory:
		messages := make([]proto.EventMessage, 0, len(event.Messages))
		for _, view := range event.Messages {
			messages = append(messages, messageView(view))
		}
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventNameHistory,
			Data: proto.EventHistory{
				Channel:  event.Channel,
				Room:     event.Room,
				Messages: messages,
			},
		}
	case core.EventRoomMessage:
		if event.Message == nil {
			return proto.Outbound{Type: proto.OutboundTypeEvent, Event: proto.EventNameMessage}
		}
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventNameMessage,
			Data:  messageView(*event.Message),
		}
	case core.EventReceipt:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventNameReceipt,
			Data: proto.EventReceipt{
				Channel:   event.Channel,
				Room:      event.Room,
				MessageID: event.MessageID,
				ReadBy:    event.Readers,
			},
		}
	case core.EventUnread:
		channels := make(map[string]proto.ChannelUnread, len(event.Unread))
		for name, cu := range event.Unread {
			channels[name] = proto.ChannelUnread{Total: cu.Total, Rooms: cu.Rooms}
		}
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventNameUnread,
			Data:  proto.EventUnread{Channels: channels},
		}
	case core.EventError:
		if event.Error == nil {
			return proto.Outbound{Type: proto.OutboundTypeError, Error: &proto.Error{Code: "unknown", Msg: "unknown error"}}
		}
		return proto.Outbound{
			Type:  proto.OutboundTypeError,
			Error: &proto.Error{Code: event.Error.Code, Msg: event.Error.Message},
		}
	default:
		return proto.Outbound{Type: proto.OutboundTypeEvent}
	}
}
