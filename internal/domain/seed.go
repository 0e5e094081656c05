package domain

// Стартовый каталог BotStore. Используется, когда слоты хранилища пусты
// или не читаются. Цены в сентимо.

func SeedCategories() NameSet {
	return NameSet{
		"Kits de Robótica",
		"Controladores",
		"Sensores",
		"Motores",
		"Chasis",
		"Accesorios",
	}
}

func SeedProductTypes() NameSet {
	return NameSet{"Kit", "Pieza"}
}

func SeedProducts() []Product {
	return []Product{
		{
			ID:          "1",
			Name:        "Kit de Robot Avanzado",
			Description: "Un kit completo para construir robots avanzados con múltiples sensores y actuadores.",
			Price:       75000,
			Category:    "Kits de Robótica",
			ImageURL:    "https://picsum.photos/seed/robotkit1/400/300",
			Type:        "Kit",
		},
		{
			ID:          "2",
			Name:        "Placa Microcontroladora MK1",
			Description: "Potente microcontrolador para proyectos de robótica, con WiFi y Bluetooth.",
			Price:       12000,
			Category:    "Controladores",
			ImageURL:    "https://picsum.photos/seed/controller1/400/300",
			Type:        "Pieza",
		},
		{
			ID:          "3",
			Name:        "Sensor Ultrasónico de Distancia",
			Description: "Sensor de alta precisión para detectar obstáculos y medir distancias.",
			Price:       4000,
			Category:    "Sensores",
			ImageURL:    "https://picsum.photos/seed/sensor1/400/300",
			Type:        "Pieza",
		},
		{
			ID:          "4",
			Name:        "Servomotor de Alto Torque",
			Description: "Servomotor confiable para movimientos precisos en brazos robóticos y pinzas.",
			Price:       6500,
			Category:    "Motores",
			ImageURL:    "https://picsum.photos/seed/motor1/400/300",
			Type:        "Pieza",
		},
		{
			ID:          "5",
			Name:        "Chasis de Aluminio para Robot",
			Description: "Chasis de aluminio duradero y ligero para construcciones de robots personalizadas.",
			Price:       18000,
			Category:    "Chasis",
			ImageURL:    "https://picsum.photos/seed/chassis1/400/300",
			Type:        "Pieza",
		},
		{
			ID:          "6",
			Name:        "Kit de Cables Jumper",
			Description: "Cables jumper surtidos para protoboard y conexión de componentes.",
			Price:       3000,
			Category:    "Accesorios",
			ImageURL:    "https://picsum.photos/seed/wires1/400/300",
			Type:        "Pieza",
		},
		{
			ID:          "7",
			Name:        "Kit de Auto Robot para Principiantes",
			Description: "Un kit de auto robot fácil de ensamblar, perfecto para principiantes que aprenden robótica y programación.",
			Price:       30000,
			Category:    "Kits de Robótica",
			ImageURL:    "https://picsum.photos/seed/robotkit2/400/300",
			Type:        "Kit",
		},
		{
			ID:          "8",
			Name:        "Sensor Seguidor de Línea Infrarrojo",
			Description: "Array de sensores para construir robots seguidores de línea.",
			Price:       5000,
			Category:    "Sensores",
			ImageURL:    "https://picsum.photos/seed/sensor2/400/300",
			Type:        "Pieza",
		},
	}
}
