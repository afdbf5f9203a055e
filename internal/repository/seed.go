package repository

import (
	"time"

	"github.com/Freeeeeet/eduschedule/internal/model"
)

// Демонстрационные данные каталога и списков занятий

func seedTeachers() []model.Teacher {
	return []model.Teacher{
		{ID: 1, Name: "Dr. Sarah Johnson", Subject: "Mathematics", Rating: 4.8, ImageURL: "https://images.unsplash.com/photo-1581091226825-a6a2a5aee158?w=400&h=400&fit=crop"},
		{ID: 2, Name: "Prof. Michael Chen", Subject: "Physics", Rating: 4.7, ImageURL: "https://images.unsplash.com/photo-1488590528505-98d2b5aba04b?w=400&h=400&fit=crop"},
		{ID: 3, Name: "Dr. Emily Davis", Subject: "Literature", Rating: 4.9, ImageURL: "https://images.unsplash.com/photo-1649972904349-6e44c42644a7?w=400&h=400&fit=crop"},
		{ID: 4, Name: "Prof. Robert Wilson", Subject: "Computer Science", Rating: 4.6, ImageURL: "https://images.unsplash.com/photo-1486312338219-ce68d2c6f44d?w=400&h=400&fit=crop"},
	}
}

func seedStudentAppointments() []model.Appointment {
	return []model.Appointment{
		{ID: 101, Counterparty: "Dr. Sarah Johnson", Topic: "Mathematics Help", Date: sampleTime(2025, time.May, 22, 14, 0), DurationMinutes: 30},
		{ID: 102, Counterparty: "Prof. Robert Wilson", Topic: "Programming Assignment Review", Date: sampleTime(2025, time.May, 24, 10, 30), DurationMinutes: 45},
	}
}

func seedTeacherAppointments() []model.Appointment {
	return []model.Appointment{
		{ID: 101, Counterparty: "Alex Johnson", Topic: "Mathematics Help", Date: sampleTime(2025, time.May, 22, 14, 0), DurationMinutes: 30},
		{ID: 102, Counterparty: "Emily Parker", Topic: "Advanced Calculus Discussion", Date: sampleTime(2025, time.May, 22, 15, 0), DurationMinutes: 45},
		{ID: 103, Counterparty: "Michael Brown", Topic: "Physics Problem Set Review", Date: sampleTime(2025, time.May, 23, 10, 30), DurationMinutes: 30},
		{ID: 104, Counterparty: "Sophia Wilson", Topic: "Midterm Exam Preparation", Date: sampleTime(2025, time.May, 24, 9, 0), DurationMinutes: 60},
	}
}

func sampleTime(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}
